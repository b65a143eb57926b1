// Package source turns serialized text into the plain nested values that
// modelcheck validates (map[string]any, []any, string, bool, json.Number,
// int, float64, nil) and renders values back to text.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format names a serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("source: unknown format %q", s)
}

// FormatOf guesses the format from a file name. Unknown extensions and "-"
// (standard input) yield def.
func FormatOf(name string, def Format) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return def
}

// Decode parses data in the given format.
func Decode(f Format, data []byte) (any, error) {
	switch f {
	case FormatJSON:
		return JSON(data)
	case FormatYAML:
		return YAML(data)
	}
	return nil, fmt.Errorf("source: unknown format %q", f)
}

// DecodeReader reads r fully and parses it in the given format.
func DecodeReader(f Format, r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: read: %w", err)
	}
	return Decode(f, data)
}

// Encode renders v in the given format. JSON output is indented.
func Encode(f Format, v any) ([]byte, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(v)
	case FormatYAML:
		return EncodeYAML(v)
	}
	return nil, fmt.Errorf("source: unknown format %q", f)
}
