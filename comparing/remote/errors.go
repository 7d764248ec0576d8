package remote

import "errors"

// ErrEmptyURL signals that an empty verdict service URL was provided
var ErrEmptyURL = errors.New("empty verdict service url")

// ErrMismatchedResponse signals that the verdict service answered a different request than the pending one
var ErrMismatchedResponse = errors.New("mismatched verdict response")
