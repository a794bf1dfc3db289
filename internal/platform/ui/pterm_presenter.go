// internal/platform/ui/pterm_presenter.go
package ui

import (
	"io"
	"sync"

	"github.com/pterm/pterm"
)

// PTermPresenter renders diagnostics with pterm styles for a terminal.
type PTermPresenter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPTermPresenter creates a presenter writing colored output to w.
func NewPTermPresenter(w io.Writer) *PTermPresenter {
	return &PTermPresenter{w: w}
}

func (p *PTermPresenter) Warning(msg string) { p.print(SeverityWarning, msg) }
func (p *PTermPresenter) Error(msg string)   { p.print(SeverityError, msg) }

// Usage writes the help text after a blank line.
func (p *PTermPresenter) Usage(render func(w io.Writer)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Fprintln(p.w)
	render(p.w)
}

func (p *PTermPresenter) print(s Severity, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Fprintln(p.w, s.Style().Sprint(s.Prefix())+" "+msg)
}
