package comparing

import (
	"context"

	"github.com/multiversx/mx-chain-core-go/core/check"

	"github.com/multiversx/mx-sorting-go/sorting"
)

// reversedComparator inverts the order defined by an inner comparator by
// swapping the operands, which keeps the verdict range intact
type reversedComparator[T any] struct {
	inner sorting.Comparator[T]
}

// NewReversedComparator creates a comparator yielding the inverse order of
// the provided one
func NewReversedComparator[T any](inner sorting.Comparator[T]) (*reversedComparator[T], error) {
	if check.IfNil(inner) {
		return nil, ErrNilInnerComparator
	}

	return &reversedComparator[T]{
		inner: inner,
	}, nil
}

// Compare returns the inner comparator's verdict for the swapped operands
func (comparator *reversedComparator[T]) Compare(ctx context.Context, a T, b T) (int, error) {
	return comparator.inner.Compare(ctx, b, a)
}

// IsInterfaceNil returns true if there is no value under the interface
func (comparator *reversedComparator[T]) IsInterfaceNil() bool {
	return comparator == nil
}
