// internal/platform/ui/noop_presenter.go
package ui

import "io"

// NoopPresenter discards every diagnostic.
type NoopPresenter struct{}

// NewNoopPresenter creates a presenter with no output
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (n *NoopPresenter) Warning(msg string)             {}
func (n *NoopPresenter) Error(msg string)               {}
func (n *NoopPresenter) Usage(render func(w io.Writer)) {}
