package errors

import (
	"errors"
	"fmt"
)

// Sentinels for the refresh pipeline.
var (
	// ErrConflict means another refresh currently holds the status lock.
	ErrConflict = errors.New("refresh already in progress")
	// ErrSessionDecode means the configured session blob is not valid base64.
	ErrSessionDecode = errors.New("session data is not valid base64")
	// ErrSessionLoad means the scraping client rejected the staged session.
	ErrSessionLoad = errors.New("failed to load session")
	// ErrCacheUnavailable means the cache store cannot be reached.
	ErrCacheUnavailable = errors.New("cache unavailable")
)

// Error pairs a sentinel with the context of the failing call.
type Error struct {
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsConflict reports whether the error is the held-lock conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
