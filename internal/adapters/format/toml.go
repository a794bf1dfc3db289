package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"tomlq/internal/core/domain"
	perrors "tomlq/internal/platform/errors"
)

// TOMLConverter reads TOML v1.0 documents.
type TOMLConverter struct{}

func (TOMLConverter) Format() domain.TargetFormat { return domain.TargetFormatTOML }

// ToJSON reads all of r and decodes it as one TOML document. The top level
// of a TOML document is always a table, so the result is always an object.
func (TOMLConverter) ToJSON(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, perrors.Mark(err, perrors.ErrOpenInput, "read toml input")
	}

	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return nil, err
	}
	return normalize(doc)
}
