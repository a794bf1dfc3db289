// internal/core/domain/enums.go
package domain

// TargetMode defines how the positional targets of an invocation are read.
type TargetMode string

const (
	// TargetModeFile treats every target as a path to a TOML/YAML file
	TargetModeFile TargetMode = "file"

	// TargetModeLiteralStrings treats every target as an inline encoded document
	TargetModeLiteralStrings TargetMode = "literal-strings"

	// TargetModeStdin reads a single document from standard input (no targets)
	TargetModeStdin TargetMode = "stdin"
)

// IsValid reports whether the mode is one of the known modes.
func (m TargetMode) IsValid() bool {
	switch m {
	case TargetModeFile, TargetModeLiteralStrings, TargetModeStdin:
		return true
	default:
		return false
	}
}

// String returns the string form of the mode.
func (m TargetMode) String() string {
	return string(m)
}

// TargetFormat defines the structured-text syntax of the targets.
type TargetFormat string

const (
	// TargetFormatTOML is TOML v1.0
	TargetFormatTOML TargetFormat = "toml"

	// TargetFormatYAML is single-document YAML
	TargetFormatYAML TargetFormat = "yaml"
)

// IsValid reports whether the format is one of the known formats.
func (f TargetFormat) IsValid() bool {
	switch f {
	case TargetFormatTOML, TargetFormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string form of the format.
func (f TargetFormat) String() string {
	return string(f)
}

// Flag returns the command-line flag that selects the format.
func (f TargetFormat) Flag() string {
	return "--" + string(f)
}

// Extension returns the file extension inferred as this format.
func (f TargetFormat) Extension() string {
	return "." + string(f)
}
