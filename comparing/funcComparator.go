package comparing

import "context"

// funcComparator adapts a pure ordering function to the Comparator interface
type funcComparator[T any] struct {
	fn func(a T, b T) int
}

// NewFuncComparator creates a comparator backed by the provided three-way
// ordering function
func NewFuncComparator[T any](fn func(a T, b T) int) (*funcComparator[T], error) {
	if fn == nil {
		return nil, ErrNilCompareFunc
	}

	return &funcComparator[T]{
		fn: fn,
	}, nil
}

// Compare returns the verdict of the wrapped function
func (comparator *funcComparator[T]) Compare(_ context.Context, a T, b T) (int, error) {
	return comparator.fn(a, b), nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (comparator *funcComparator[T]) IsInterfaceNil() bool {
	return comparator == nil
}
