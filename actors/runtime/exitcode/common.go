package exitcode

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

// Common error codes that may be shared by different actors.
// Actors may also define their own codes, including redefining these values.

const (
	// Indicates a method parameter is invalid.
	ErrIllegalArgument = FirstActorErrorCode + iota
	// Indicates a requested resource does not exist.
	ErrNotFound
	// Indicates an action is disallowed.
	ErrForbidden
	// Indicates a balance of funds is insufficient.
	ErrInsufficientFunds
	// Indicates an actor's internal state is invalid.
	ErrIllegalState
	// Indicates de/serialization failure within actor code.
	ErrSerialization

	// An error code intended to be replaced by different code structure or a more descriptive error.
	ErrPlaceholder = ExitCode(1000)
)

// Wrapf attaches an exit code to an error, without altering the message.
// The code can be extracted again with Unwrap.
func (x ExitCode) Wrapf(msg string, args ...interface{}) error {
	return &wrappedError{x, xerrors.Errorf(msg, args...)}
}

type wrappedError struct {
	code  ExitCode
	cause error
}

func (w *wrappedError) Error() string {
	return fmt.Sprintf("%s (exit code %d)", w.cause, w.code)
}

// Is matches any error carrying the same exit code. The wrapper deliberately
// does not implement Unwrap: an outer code shadows any inner one.
func (w *wrappedError) Is(target error) bool {
	code, ok := target.(ExitCode)
	return ok && w.code == code
}

// Unwrap extracts the exit code from an error, or returns a default if the error carries none.
func Unwrap(err error, defaultCode ExitCode) ExitCode {
	var w *wrappedError
	if errors.As(err, &w) {
		return w.code
	}
	return defaultCode
}
