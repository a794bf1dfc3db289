// Package errors provides error types and utilities for tomlq.
// It extends the standard errors package with classification of I/O
// failures and the mapping from errors to process exit codes.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the I/O failures that abort an invocation.
var (
	// ErrOpenInput indicates a target file could not be opened or read
	ErrOpenInput = errors.New("cannot read input")

	// ErrTempFile indicates an ephemeral JSON file could not be created or written
	ErrTempFile = errors.New("cannot write temporary file")

	// ErrSpawn indicates the query engine process could not be started
	ErrSpawn = errors.New("cannot start query engine")

	// ErrPipeWrite indicates the converted payload could not be written to the engine's stdin
	ErrPipeWrite = errors.New("cannot write to query engine stdin")
)

// ExitFailure is the exit status used for every error raised by the tool
// itself, as opposed to a status forwarded from the query engine.
const ExitFailure = 1

// ExitCoder is implemented by errors that carry their own exit status.
type ExitCoder interface {
	ExitCode() int
}

// wrappedError wraps an error with additional context and an optional kind
type wrappedError struct {
	msg   string
	kind  error
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Is reports whether target is the kind this error was marked with.
func (e *wrappedError) Is(target error) bool {
	return e.kind != nil && e.kind == target
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
//
// Example:
//
//	f, err := os.Open(path)
//	if err != nil {
//	    return errors.Wrap(err, "open input")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Mark wraps err with a formatted message and classifies it as kind, so that
// Is(result, kind) holds alongside every error already in err's chain.
// If err is nil, Mark returns nil.
func Mark(err error, kind error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		kind:  kind,
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
// This is a convenience wrapper around errors.As from the standard library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// ExitCode maps err to a process exit status: 0 for nil, the status carried
// by the first ExitCoder in the chain, ExitFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitFailure
}

// IsIO reports whether err is one of the classified I/O failures.
func IsIO(err error) bool {
	return Is(err, ErrOpenInput) || Is(err, ErrTempFile) || Is(err, ErrSpawn) || Is(err, ErrPipeWrite)
}
