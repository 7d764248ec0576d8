package comparing

import "errors"

// ErrNilCompareFunc signals that a nil compare function was provided
var ErrNilCompareFunc = errors.New("nil compare function")

// ErrNilInnerComparator signals that a nil inner comparator was provided
var ErrNilInnerComparator = errors.New("nil inner comparator")
