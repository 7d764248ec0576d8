package comparing

import (
	"context"

	"golang.org/x/exp/constraints"

	"github.com/multiversx/mx-sorting-go/sorting"
)

// orderedComparator orders values by their native < relation
type orderedComparator[T constraints.Ordered] struct{}

// NewOrderedComparator creates a comparator for types with a native ordering.
// It never blocks and never fails.
func NewOrderedComparator[T constraints.Ordered]() *orderedComparator[T] {
	return &orderedComparator[T]{}
}

// Compare returns -1, 0 or 1 as a sorts below, equal to or above b
func (comparator *orderedComparator[T]) Compare(_ context.Context, a T, b T) (int, error) {
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (comparator *orderedComparator[T]) IsInterfaceNil() bool {
	return comparator == nil
}

// SortOrdered sorts items with their native ordering through a single-use
// sorter
func SortOrdered[T constraints.Ordered](ctx context.Context, items []T) ([]T, error) {
	return sorting.SortSlice[T](ctx, items, NewOrderedComparator[T]())
}
