// internal/core/ports/engine.go
package ports

import (
	"context"
	"fmt"
)

// QueryEngine is the port for the external JSON query process.
type QueryEngine interface {
	// Name returns the executable the engine runs (e.g. "jq")
	Name() string

	// Run starts the engine, feeds it the request and waits for it to exit.
	// A non-zero exit is reported through QueryResult, not as an error.
	Run(ctx context.Context, req QueryRequest) (QueryResult, error)
}

// QueryRequest is a fully assembled engine invocation.
type QueryRequest struct {
	// Args are passed to the engine verbatim: flags, command, positional args.
	Args []string

	// Stdin, when non-nil, is written to the engine's standard input which is
	// then closed. When nil the engine reads an empty stdin.
	Stdin *string
}

// QueryResult describes how the engine process ended.
type QueryResult struct {
	// ExitCode is the engine's exit status, -1 when it did not exit normally.
	ExitCode int

	// Signal is set when the engine was terminated by a signal.
	Signal string

	// SignalNumber is the numeric signal, 0 when Signal is empty.
	SignalNumber int
}

// Signaled reports whether the engine was killed by a signal.
func (r QueryResult) Signaled() bool {
	return r.Signal != ""
}

// StatusCode is the status the tool should exit with to mirror the engine.
// A signal-terminated engine maps to 128+signal, following shells. When no
// status is known at all the tool exits successfully.
func (r QueryResult) StatusCode() int {
	switch {
	case r.Signaled():
		return 128 + r.SignalNumber
	case r.ExitCode < 0:
		return 0
	default:
		return r.ExitCode
	}
}

func (r QueryResult) String() string {
	if r.Signaled() {
		return fmt.Sprintf("killed by %s", r.Signal)
	}
	return fmt.Sprintf("exit status %d", r.ExitCode)
}
