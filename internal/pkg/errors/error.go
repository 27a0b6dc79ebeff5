package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal server error")

	// Credential failures. ErrUserNotFound and ErrInvalidCredentials are
	// distinct internally but share one caller-facing message so the API
	// does not reveal which personnel numbers exist.
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordExpired    = errors.New("password expired")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrAccountDismissed   = errors.New("account dismissed")

	// Authorization failures
	ErrInvalidToken        = errors.New("invalid auth token")
	ErrSessionExpired      = errors.New("session expired")
	ErrUnauthenticated     = errors.New("not authenticated")
	ErrMalformedAuthHeader = errors.New("malformed authorization header")
)

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap extracts the underlying wrapped error.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// MessageOrDefault returns err.Error() or a fallback message if err is nil.
func MessageOrDefault(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}
