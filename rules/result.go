package rules

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is matched by every error returned from Result.Err.
var ErrInvalidValue = errors.New("invalid column value")

// Result is the outcome of a single column check. The zero value is Valid.
type Result struct {
	invalid bool
	message string
}

// Valid is the Result of a value that fits its column.
var Valid = Result{}

// Invalid returns a failed Result with a formatted message.
func Invalid(format string, args ...any) Result {
	return Result{
		invalid: true,
		message: fmt.Sprintf(format, args...),
	}
}

func (r Result) OK() bool {
	return !r.invalid
}

// Message is empty for a Valid result.
func (r Result) Message() string {
	return r.message
}

func (r Result) String() string {
	if r.OK() {
		return "valid"
	}
	return r.message
}

// Err returns nil for a Valid result and a *ValueError otherwise.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ValueError{Message: r.message}
}

// ValueError carries the message of an Invalid result.
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string {
	return e.Message
}

func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}
