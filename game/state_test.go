package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateApplyMove(t *testing.T) {
	t.Run("step moves the piece and records history", func(t *testing.T) {
		s := NewState()

		err := s.ApplyMove(NewStep(5, 0, 4, 1), 0)

		require.NoError(t, err)
		b := s.Snapshot()
		require.Equal(t, Empty, b[5][0])
		require.Equal(t, WhiteMan, b[4][1])
		require.Equal(t, 2, s.Len())
		require.Equal(t, 0, s.ChainTag())
	})

	t.Run("capture removes the captured piece", func(t *testing.T) {
		var b Board
		b[4][3] = WhiteMan
		b[3][4] = BlackMan
		s := NewState()
		s.Reset(b)

		err := s.ApplyMove(NewCapture(4, 3, 2, 5, 3, 4), 1)

		require.NoError(t, err)
		got := s.Snapshot()
		require.Equal(t, Empty, got[3][4], "Captured piece should be removed")
		require.Equal(t, WhiteMan, got[2][5])
		require.Equal(t, 1, s.ChainTag())
	})

	t.Run("man reaching the far row is promoted", func(t *testing.T) {
		var b Board
		b[1][2] = WhiteMan
		b[6][1] = BlackMan
		s := NewState()
		s.Reset(b)

		require.NoError(t, s.ApplyMove(NewStep(1, 2, 0, 1), 0))
		require.NoError(t, s.ApplyMove(NewStep(6, 1, 7, 0), 0))

		got := s.Snapshot()
		require.Equal(t, WhiteKing, got[0][1], "White man should be crowned on row 0")
		require.Equal(t, BlackKing, got[7][0], "Black man should be crowned on row 7")
	})

	t.Run("king is never demoted", func(t *testing.T) {
		var b Board
		b[0][1] = WhiteKing
		s := NewState()
		s.Reset(b)

		require.NoError(t, s.ApplyMove(NewStep(0, 1, 5, 6), 0))
		require.NoError(t, s.ApplyMove(NewStep(5, 6, 7, 4), 0))

		require.Equal(t, WhiteKing, s.Snapshot()[7][4])
	})

	t.Run("occupied destination is rejected", func(t *testing.T) {
		s := NewState()

		err := s.ApplyMove(NewStep(6, 1, 5, 0), 0)

		require.True(t, errors.Is(err, ErrInvalidMove))
		require.Equal(t, 1, s.Len(), "Rejected moves should not be recorded")
		require.Equal(t, NewBoard(), s.Snapshot())
	})

	t.Run("empty origin is rejected", func(t *testing.T) {
		s := NewState()

		err := s.ApplyMove(NewStep(4, 1, 3, 0), 0)

		require.ErrorIs(t, err, ErrInvalidMove)
	})
}

func TestStateSnapshot(t *testing.T) {
	s := NewState()
	snap := s.Snapshot()
	snap[5][0] = Empty

	require.Equal(t, WhiteMan, s.Snapshot()[5][0], "Mutating a snapshot should not affect the state")
}

func TestStateUndo(t *testing.T) {
	t.Run("undo on the initial position fails", func(t *testing.T) {
		s := NewState()

		err := s.Undo()

		require.ErrorIs(t, err, ErrNoHistory)
		require.Equal(t, 1, s.Len())
	})

	t.Run("undo restores the previous snapshot", func(t *testing.T) {
		s := NewState()
		before := s.Snapshot()

		require.NoError(t, s.ApplyMove(NewStep(5, 2, 4, 3), 0))
		require.NoError(t, s.Undo())

		require.Equal(t, before, s.Snapshot())
		require.Equal(t, 1, s.Len())
	})

	t.Run("undo removes a whole capture chain", func(t *testing.T) {
		var b Board
		b[6][1] = WhiteMan
		b[5][2] = BlackMan
		b[3][4] = BlackMan
		b[0][7] = BlackMan
		s := NewState()
		s.Reset(b)
		require.NoError(t, s.ApplyMove(NewStep(0, 7, 1, 6), 0))
		afterBlack := s.Snapshot()

		require.NoError(t, s.ApplyMove(NewCapture(6, 1, 4, 3, 5, 2), 1))
		require.NoError(t, s.ApplyMove(NewCapture(4, 3, 2, 5, 3, 4), 2))
		require.NoError(t, s.Undo())

		require.Equal(t, afterBlack, s.Snapshot(), "Undo should restore the board from before the chain")
		require.Equal(t, 2, s.Len())
	})

	t.Run("undo never removes the initial position", func(t *testing.T) {
		var b Board
		b[6][1] = WhiteMan
		b[5][2] = BlackMan
		b[3][4] = BlackMan
		s := NewState()
		s.Reset(b)
		require.NoError(t, s.ApplyMove(NewCapture(6, 1, 4, 3, 5, 2), 1))
		require.NoError(t, s.ApplyMove(NewCapture(4, 3, 2, 5, 3, 4), 2))

		require.NoError(t, s.Undo())
		require.Equal(t, b, s.Snapshot())
		require.ErrorIs(t, s.Undo(), ErrNoHistory)
	})
}

func TestBoardApplyIsPure(t *testing.T) {
	b := NewBoard()

	next := b.Apply(NewStep(5, 0, 4, 1))

	require.Equal(t, WhiteMan, b[5][0], "Apply should not modify the receiver")
	require.Equal(t, WhiteMan, next[4][1])
}
