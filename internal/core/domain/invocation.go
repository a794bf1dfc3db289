// internal/core/domain/invocation.go
package domain

import (
	"fmt"
	"path/filepath"
)

// ResolvedInvocation is the fully disambiguated command line.
type ResolvedInvocation struct {
	// Flags are forwarded verbatim to the query engine, in order.
	Flags []string

	// Command is the query expression.
	Command string

	// Targets are paths or literal documents, depending on Mode.
	Targets []string

	Mode   TargetMode
	Format TargetFormat
}

// Validate checks the mode/target invariants of the invocation.
func (r ResolvedInvocation) Validate() error {
	if !r.Mode.IsValid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInvocation, r.Mode)
	}
	if !r.Format.IsValid() {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidInvocation, r.Format)
	}
	if len(r.Targets) == 0 && r.Mode != TargetModeStdin {
		return fmt.Errorf("%w: %s mode without targets", ErrInvalidInvocation, r.Mode)
	}
	if len(r.Targets) > 0 && r.Mode == TargetModeStdin {
		return fmt.Errorf("%w: stdin mode with %d targets", ErrInvalidInvocation, len(r.Targets))
	}
	return nil
}

// InferFormat maps a file name to a format by its extension. Only ".toml"
// and ".yaml" are recognised, case-sensitively. A dot-file such as ".toml"
// has no extension.
func InferFormat(path string) (TargetFormat, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return "", &AmbiguousExtensionError{Problem: ExtensionMissing, Path: path}
	}
	switch ext {
	case TargetFormatTOML.Extension():
		return TargetFormatTOML, nil
	case TargetFormatYAML.Extension():
		return TargetFormatYAML, nil
	default:
		return "", &AmbiguousExtensionError{Problem: ExtensionUnknown, Path: path, Ext: ext}
	}
}
