// internal/core/ports/converter.go
package ports

import (
	"io"

	"tomlq/internal/core/domain"
)

// Converter is the port for turning one TOML/YAML document into a JSON value.
type Converter interface {
	// Format returns the syntax this converter reads
	Format() domain.TargetFormat

	// ToJSON decodes a whole document from r into a JSON-shaped value:
	// map[string]any, []any, string, float64/int64/uint64, bool or nil.
	ToJSON(r io.Reader) (any, error)
}
