package exam

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates an unknown question or session id.
var ErrNotFound = errors.New("not found")

// ErrDuplicateResponse indicates a (session_id, question_id) pair was
// already recorded. Callers treat this as a safe retry, not a failure.
var ErrDuplicateResponse = errors.New("duplicate response")

// ErrInvalidState indicates an operation on a completed session.
var ErrInvalidState = errors.New("session already completed")

// InvalidArgumentError reports a malformed input value, such as an
// out-of-range difficulty level or an unknown answer option.
type InvalidArgumentError struct {
	Field string
	Value any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}

// IsInvalidArgument reports whether err is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}
