// internal/platform/ui/presenter.go
package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Presenter shows the tool's own diagnostics. The query engine's output
// never goes through a Presenter.
type Presenter interface {
	// Warning shows a warning
	Warning(msg string)

	// Error shows an error
	Error(msg string)

	// Usage shows the help text produced by render
	Usage(render func(w io.Writer))
}

// NewPresenter picks a presenter for w: colored when w is a terminal,
// plain text otherwise.
func NewPresenter(w io.Writer) Presenter {
	if IsTerminal(w) {
		return NewPTermPresenter(w)
	}
	return NewRawPresenter(w)
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
