// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Usage errors: mistakes on the command line, reported before any input is read.
var (
	ErrJSONArgsUnsupported        = errors.New("option `--jsonargs` not supported")
	ErrConflictingFormats         = errors.New("conflicting format options")
	ErrMissingCommand             = errors.New("must specify the `jq` command to execute")
	ErrExplicitModeWithoutTargets = errors.New("explicit mode requires at least one target")
	ErrFormatRequired             = errors.New("must specify explicit --yaml or --toml")
	ErrInvalidInvocation          = errors.New("invalid invocation")
)

// Format inference errors.
var (
	ErrExtensionMissing = errors.New("file has no extension")
	ErrExtensionUnknown = errors.New("unknown file extension")
)

// ErrMultipleDocuments is returned when a YAML stream holds more than one document.
var ErrMultipleDocuments = errors.New("multiple YAML documents are not supported")

// UsageError is a command-line mistake. Kind is one of the usage sentinels
// above; Message is what the user sees.
type UsageError struct {
	Kind    error
	Message string
	// ShowUsage asks the entry point to print the usage text after the message.
	ShowUsage bool
}

func (e *UsageError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *UsageError) Unwrap() error { return e.Kind }

// ExitCode makes every usage error terminate the process with status 1.
func (e *UsageError) ExitCode() int { return 1 }

// NewUsageError builds a UsageError of the given kind with a formatted message.
func NewUsageError(kind error, format string, args ...any) *UsageError {
	return &UsageError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ExtensionProblem distinguishes the two ways format inference fails.
type ExtensionProblem int

const (
	ExtensionMissing ExtensionProblem = iota
	ExtensionUnknown
)

// AmbiguousExtensionError is returned when the format of a file target can
// not be inferred from its name.
type AmbiguousExtensionError struct {
	Problem ExtensionProblem
	Path    string
	// Ext includes the leading dot; empty when Problem is ExtensionMissing.
	Ext string
}

func (e *AmbiguousExtensionError) Error() string {
	if e.Problem == ExtensionMissing {
		return fmt.Sprintf("file has no extension: %s", e.Path)
	}
	return fmt.Sprintf("unknown file extension: %s", e.Ext)
}

func (e *AmbiguousExtensionError) Unwrap() error {
	if e.Problem == ExtensionMissing {
		return ErrExtensionMissing
	}
	return ErrExtensionUnknown
}

// ParseError reports malformed input. Source names where the input came
// from: a path, "argument #n" or "<stdin>".
type ParseError struct {
	Format TargetFormat
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s in %s: %v", e.Format, e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
