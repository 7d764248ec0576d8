package prompt

import "errors"

// ErrNilInputReader signals that a nil input reader was provided
var ErrNilInputReader = errors.New("nil input reader")

// ErrNilOutputWriter signals that a nil output writer was provided
var ErrNilOutputWriter = errors.New("nil output writer")

// ErrInputClosed signals that the input stream ended while an answer was still expected
var ErrInputClosed = errors.New("input stream closed")
