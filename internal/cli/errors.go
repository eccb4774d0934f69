package cli

import (
	"errors"

	"github.com/vk/qpass/internal/password"
	"github.com/vk/qpass/internal/profile"
)

const (
	// ExitRuntime is used for failures unrelated to the arguments.
	ExitRuntime = 1
	// ExitUsage is used for invalid arguments or settings.
	ExitUsage = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// UnknownFlagError reports an option that qpass does not define.
type UnknownFlagError struct {
	Flag string
}

// Error implements the error interface for UnknownFlagError.
func (e *UnknownFlagError) Error() string {
	return "flag provided but not defined: -" + e.Flag
}

func usageError(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
}

// AsExitError turns any error returned while running qpass into an
// ExitError. Errors caused by bad input map to ExitUsage, everything else
// to ExitRuntime.
func AsExitError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	var lengthErr *password.InvalidLengthError
	var countErr *password.InvalidCountError
	var poolErr *password.EmptyPoolError
	switch {
	case errors.As(err, &lengthErr),
		errors.As(err, &countErr),
		errors.As(err, &poolErr),
		errors.Is(err, password.ErrInvalidComposition),
		errors.Is(err, profile.ErrUnknownProfile):
		return usageError(err)
	}
	return &ExitError{Code: ExitRuntime, Message: err.Error(), Err: err}
}
