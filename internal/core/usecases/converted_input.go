// internal/core/usecases/converted_input.go
package usecases

import (
	"io/fs"
	"os"

	"tomlq/internal/core/domain"
	"tomlq/internal/platform/errors"
)

// ConvertedInput is converted JSON ready to be handed to the query engine.
// It is one of *TempFiles, *LiteralStrings or *StdinPayload.
//
// Close releases whatever the input owns and must be called once the engine
// has exited; calling it again is a no-op.
type ConvertedInput interface {
	Mode() domain.TargetMode

	// Args returns the positional arguments appended after the command.
	Args() []string

	// Stdin returns the text to pipe into the engine, if any.
	Stdin() (string, bool)

	Close() error
}

// TempFiles holds ephemeral JSON files, one per file target, in target order.
type TempFiles struct {
	paths  []string
	closed bool
}

func (t *TempFiles) Mode() domain.TargetMode { return domain.TargetModeFile }

func (t *TempFiles) Args() []string { return append([]string{}, t.paths...) }

func (t *TempFiles) Stdin() (string, bool) { return "", false }

// Close removes every file. Files that are already gone are not an error.
func (t *TempFiles) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	var errs []error
	for _, p := range t.paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *TempFiles) add(path string) {
	t.paths = append(t.paths, path)
}

// LiteralStrings holds one compact JSON text per literal target.
type LiteralStrings struct {
	literals []string
}

func (l *LiteralStrings) Mode() domain.TargetMode { return domain.TargetModeLiteralStrings }

func (l *LiteralStrings) Args() []string { return append([]string{}, l.literals...) }

func (l *LiteralStrings) Stdin() (string, bool) { return "", false }

func (l *LiteralStrings) Close() error { return nil }

// StdinPayload is the compact JSON text of the document read from stdin.
type StdinPayload struct {
	text string
}

func (s *StdinPayload) Mode() domain.TargetMode { return domain.TargetModeStdin }

func (s *StdinPayload) Args() []string { return nil }

func (s *StdinPayload) Stdin() (string, bool) { return s.text, true }

func (s *StdinPayload) Close() error { return nil }
