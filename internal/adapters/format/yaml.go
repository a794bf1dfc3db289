package format

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"tomlq/internal/core/domain"
	perrors "tomlq/internal/platform/errors"
)

// YAMLConverter reads single-document YAML streams.
type YAMLConverter struct{}

func (YAMLConverter) Format() domain.TargetFormat { return domain.TargetFormatYAML }

// ToJSON reads all of r and decodes its first document. Anchors, aliases
// and merge keys are resolved by the decoder. An empty stream is null. A
// stream holding a second document is rejected with domain.ErrMultipleDocuments.
func (YAMLConverter) ToJSON(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, perrors.Mark(err, perrors.ErrOpenInput, "read yaml input")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, err
	default:
		return nil, domain.ErrMultipleDocuments
	}

	return normalize(doc)
}
