package utils

// FindIndex returns the index of the first element equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// AppendUnique appends the items not yet in slice, keeping the first occurrence.
func AppendUnique[T comparable](slice []T, items ...T) []T {
	for _, item := range items {
		if FindIndex(slice, item) == -1 {
			slice = append(slice, item)
		}
	}
	return slice
}
