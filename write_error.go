package sout

import (
	"fmt"
)

// WriteError represents a failed write or flush against a synchronized sink.
// Formatting-time failures and flush failures share this one kind: both mean
// the output could not be delivered, and callers handle them identically.
type WriteError struct {
	Op     string // Operation that failed ("write" or "flush")
	Stream string // Label of the destination stream
	Err    error  // Underlying error
}

// newWriteError creates a new WriteError
func newWriteError(op, stream string, err error) *WriteError {
	return &WriteError{
		Op:     op,
		Stream: stream,
		Err:    err,
	}
}

// Error returns the error message
func (e *WriteError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sout.%s: output failed [stream=%s]", e.Op, e.Stream)
	}
	return fmt.Sprintf("sout.%s: %v [stream=%s]", e.Op, e.Err, e.Stream)
}

// Unwrap returns the underlying error
func (e *WriteError) Unwrap() error {
	return e.Err
}
