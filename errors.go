package vector

import "fmt"

// OutOfBoundsError is panicked by Get, Set, and Slice when an index or
// slice endpoint falls outside [0, Len()).
type OutOfBoundsError struct {
	Index int
	Len   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0:%d]", e.Index, e.Len)
}

// EmptyError is panicked by Pop when called on a zero-length vector.
type EmptyError struct{}

func (e *EmptyError) Error() string {
	return "vector: pop of empty vector"
}

func outOfBounds(i, n int) {
	panic(&OutOfBoundsError{Index: i, Len: n})
}
