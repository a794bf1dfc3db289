// Package format converts TOML and YAML documents into JSON values.
//
// Each converter decodes into the generic value its library produces and
// then normalises it into a strictly JSON-shaped tree, so that the result can
// be serialised with encoding/json and fed to jq unchanged.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"tomlq/internal/core/domain"
	"tomlq/internal/core/ports"
	"tomlq/internal/platform/registry"
)

func init() {
	registry.Global().MustRegister(TOMLConverter{})
	registry.Global().MustRegister(YAMLConverter{})
}

// For returns the registered converter for f.
func For(f domain.TargetFormat) (ports.Converter, error) {
	return registry.Global().Lookup(f)
}

// MarshalCompact serialises a JSON value without insignificant whitespace.
// HTML characters are left unescaped; jq reads them either way.
func MarshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCompact(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCompact writes the compact JSON form of v to w, without a trailing newline.
func WriteCompact(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}
