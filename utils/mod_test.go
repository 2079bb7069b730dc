package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex(nil, 0))
}

func TestAppendUnique(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, AppendUnique([]int{1}, 2, 1, 3, 2))
	require.Nil(t, AppendUnique[int](nil))
}
