package api

import (
	"errors"
	"fmt"
)

// UnreachableError means the request never reached the backend: DNS failure,
// refused connection, cancelled context. The backend did not respond at all.
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// StatusError is a non-2xx response from the backend. Detail is the backend's
// human-readable explanation, filled in only when the response body declared a
// JSON content type and carried a "detail" field.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsUnreachable reports whether err is a connectivity failure.
func IsUnreachable(err error) bool {
	var ue *UnreachableError
	return errors.As(err, &ue)
}
