// Package easydb/errors defines error values used throughout the easydb package.
// These sentinel errors provide specific error types for the different failure
// modes of placeholder binding, configuration and schema validation.
package easydb

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for various easydb operations.
var (
	// ErrFormatParamFuncRequired indicates that a nil FormatParamFunc was passed.
	ErrFormatParamFuncRequired = errors.New("format param func is required")

	// ErrInvalidPlaceholderName indicates that a placeholder name is malformed.
	// Valid placeholders are :name where name is an Identifier.
	ErrInvalidPlaceholderName = errors.New("invalid placeholder name")

	// ErrMissingParam indicates a placeholder with no matching parameter.
	ErrMissingParam = errors.New("missing parameter")

	ErrMissingEnv = errors.New("missing environment variable")

	ErrInvalidConfig = errors.New("invalid database config")

	ErrUnsupportedDriver = errors.New("unsupported database driver")

	ErrConnect = errors.New("database connection failed")

	ErrInvalidColumn = errors.New("invalid column value")

	ErrInvalidSchema = errors.New("invalid schema")
)

// NewErr wraps sentinel with context given as alternating keys and values,
// e.g. NewErr(ErrMissingParam, "name", "id"). Any error among the values is
// wrapped as well, so errors.Is matches it.
func NewErr(sentinel error, kvs ...any) error {
	return &contextErr{sentinel: sentinel, kvs: kvs}
}

// CombineErrs joins errs into one error, or returns nil if there are none.
func CombineErrs(errs []error) error {
	return errors.Join(errs...)
}

type contextErr struct {
	sentinel error
	kvs      []any
}

func (e *contextErr) Error() string {
	var sb strings.Builder
	sb.WriteString(e.sentinel.Error())
	for i := 0; i < len(e.kvs); i++ {
		sb.WriteString("; ")
		if err, ok := e.kvs[i].(error); ok {
			sb.WriteString(err.Error())
			continue
		}
		if i+1 == len(e.kvs) {
			fmt.Fprintf(&sb, "%v", e.kvs[i])
			continue
		}
		fmt.Fprintf(&sb, "%v=%v", e.kvs[i], e.kvs[i+1])
		i++
	}
	return sb.String()
}

func (e *contextErr) Unwrap() []error {
	errs := []error{e.sentinel}
	for _, kv := range e.kvs {
		if err, ok := kv.(error); ok {
			errs = append(errs, err)
		}
	}
	return errs
}
