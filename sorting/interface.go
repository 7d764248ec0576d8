package sorting

import "context"

// Comparator decides the relative order of two elements. A negative result
// means a precedes b, zero means the two are equal in order, positive means
// a follows b. The result must form a consistent total order for the
// lifetime of one sort call.
//
// A call is allowed to block for an arbitrarily long time (human input, a
// remote service, any other I/O). The engine issues calls strictly one at a
// time, on the caller's goroutine, and the sequence of compared pairs is
// deterministic for a deterministic comparator.
type Comparator[T any] interface {
	Compare(ctx context.Context, a T, b T) (int, error)
	IsInterfaceNil() bool
}
