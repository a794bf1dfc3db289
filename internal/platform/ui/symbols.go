// internal/platform/ui/symbols.go
package ui

import "github.com/pterm/pterm"

// Severity is the level of a diagnostic shown to the user.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String converts the severity to a string.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Prefix is the label a diagnostic line starts with.
func (s Severity) Prefix() string {
	switch s {
	case SeverityWarning:
		return "WARNING:"
	case SeverityError:
		return "ERROR:"
	default:
		return "?:"
	}
}

// Style returns the terminal style of the prefix.
func (s Severity) Style() *pterm.RGBStyle {
	var style pterm.RGBStyle
	if s == SeverityError {
		style = StyleError
	} else {
		style = StyleWarning
	}
	return &style
}
