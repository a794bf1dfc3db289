// internal/platform/ui/raw_presenter.go
package ui

import (
	"fmt"
	"io"
	"sync"
)

// RawPresenter writes diagnostics as plain text, for pipes and files.
type RawPresenter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewRawPresenter creates a RawPresenter writing to w.
func NewRawPresenter(w io.Writer) *RawPresenter {
	return &RawPresenter{w: w}
}

func (r *RawPresenter) Warning(msg string) { r.print(SeverityWarning, msg) }
func (r *RawPresenter) Error(msg string)   { r.print(SeverityError, msg) }

// Usage writes the help text after a blank line.
func (r *RawPresenter) Usage(render func(w io.Writer)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintln(r.w)
	render(r.w)
}

func (r *RawPresenter) print(s Severity, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.w, "%s %s\n", s.Prefix(), msg)
}
