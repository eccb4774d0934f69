package password

import (
	"errors"
	"fmt"
)

// ErrInvalidComposition is returned when a Composition cannot be satisfied
// by the Spec it belongs to.
var ErrInvalidComposition = errors.New("invalid composition")

// InvalidLengthError reports a password length that is not a positive
// integer within MaxLength.
type InvalidLengthError struct {
	Value  string
	Reason string
}

// Error implements the error interface for InvalidLengthError.
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length %q: %s", e.Value, e.Reason)
}

// InvalidCountError reports a number of passwords outside [1, MaxCount].
type InvalidCountError struct {
	Value  int
	Reason string
}

// Error implements the error interface for InvalidCountError.
func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("count %s, got %d", e.Reason, e.Value)
}

// EmptyPoolError reports that no character is left to choose from.
type EmptyPoolError struct {
	Classes ClassSet
}

// Error implements the error interface for EmptyPoolError.
func (e *EmptyPoolError) Error() string {
	if e.Classes == 0 {
		return "empty character pool: enable at least one character class"
	}
	return fmt.Sprintf("empty character pool: classes %q leave no usable characters", e.Classes.String())
}
