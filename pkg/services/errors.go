// Package services holds the persistence layer between the investigation
// engine and the database: investigation sessions are written as the queue
// processes them and read back by the HTTP API.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNotCancellable indicates the session is already terminal.
	ErrNotCancellable = errors.New("session is not cancellable")
)

// ValidationError reports an invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
