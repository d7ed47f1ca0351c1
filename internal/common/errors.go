// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrNotFound indicates a lookup for a record or key that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSessionLoading indicates the session has not been restored yet.
	// Callers must wait for the restore at process start before reading it.
	ErrSessionLoading = errors.New("session still loading")

	// ErrNotSignedIn indicates an operation that requires a signed-in user.
	ErrNotSignedIn = errors.New("not signed in")
)

// ValidationError reports input rejected at a commit point: an empty
// company name on continue, a malformed email at sign-in. It is surfaced
// to the user as a blocking message and changes no state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError reports a failed storage operation. It is never fatal:
// the in-memory state stays valid and dirty, and the next edit retries
// naturally through the autosave scheduler.
type PersistenceError struct {
	Err error
	Op  string
	Key string
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps a store failure with its operation and key.
func NewPersistenceError(op, key string, err error) error {
	return &PersistenceError{Op: op, Key: key, Err: err}
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
