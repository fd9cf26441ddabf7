package services

import (
	"errors"
	"fmt"
)

// DownstreamError reports a failed call to a backing service. It is never
// retried here; the platform's retry policy applies.
type DownstreamError struct {
	Service string // Backing service, e.g. "dynamodb"
	Op      string // Operation that failed, e.g. "ListTables"
	Err     error  // Underlying SDK error
}

func (e *DownstreamError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Op, e.Err)
}

func (e *DownstreamError) Unwrap() error {
	return e.Err
}

// NewDownstreamError creates a new DownstreamError
func NewDownstreamError(service, op string, err error) *DownstreamError {
	return &DownstreamError{
		Service: service,
		Op:      op,
		Err:     err,
	}
}

// IsDownstreamError returns true if err came from a backing service call
func IsDownstreamError(err error) bool {
	var downstreamErr *DownstreamError
	return errors.As(err, &downstreamErr)
}
