package testscommon

import "context"

// ComparatorStub -
type ComparatorStub[T any] struct {
	CompareCalled func(ctx context.Context, a T, b T) (int, error)
}

// Compare -
func (stub *ComparatorStub[T]) Compare(ctx context.Context, a T, b T) (int, error) {
	if stub.CompareCalled != nil {
		return stub.CompareCalled(ctx, a, b)
	}

	return 0, nil
}

// IsInterfaceNil -
func (stub *ComparatorStub[T]) IsInterfaceNil() bool {
	return stub == nil
}
