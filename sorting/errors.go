package sorting

import "errors"

// ErrNilComparator signals that a nil comparator was provided
var ErrNilComparator = errors.New("nil comparator")

// ErrUnknownMinRunPolicy signals that an unknown minimum run length policy was requested
var ErrUnknownMinRunPolicy = errors.New("unknown minimum run length policy")

// ErrInvalidRange signals that the engine computed a sub-range outside the sequence bounds
var ErrInvalidRange = errors.New("invalid range")

// ErrComparatorContract signals that the comparator returned orderings that are not a consistent total order
var ErrComparatorContract = errors.New("comparator violates its ordering contract")
