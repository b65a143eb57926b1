package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/modelcheck/internal/engine"
)

// MaxDepth bounds the nesting of objects and arrays in decoded JSON. It
// matches the validator's default depth limit.
const MaxDepth = engine.DefaultMaxDepth

// DuplicateKeyError reports an object key that occurs twice.
type DuplicateKeyError struct {
	Pointer string
	Key     string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("source: duplicate key %q at %s", e.Key, e.Pointer)
}

var (
	// ErrTrailingData is returned when input continues after the first value.
	ErrTrailingData = errors.New("source: trailing data after JSON value")
	// ErrMaxDepth is returned when containers nest deeper than MaxDepth.
	ErrMaxDepth = errors.New("source: max depth exceeded")
)

// JSON decodes a single JSON document. Numbers are kept as json.Number so
// that their text survives until validation; duplicate object keys are
// rejected.
func JSON(data []byte) (any, error) { return JSONReader(bytes.NewReader(data)) }

// JSONReader decodes a single JSON document from r.
func JSONReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	v, err := readValue(dec, nil)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}

// number is satisfied by the decoder's number literal type.
type number interface {
	String() string
	Float64() (float64, error)
}

func readValue(dec *gojson.Decoder, path []string) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("source: json at %s: %w", pointer(path), err)
	}
	switch t := tok.(type) {
	case gojson.Delim:
		if (t == '{' || t == '[') && len(path) >= MaxDepth {
			return nil, fmt.Errorf("source: json at %s: %w", pointer(path), ErrMaxDepth)
		}
		switch t {
		case '{':
			return readObject(dec, path)
		case '[':
			return readArray(dec, path)
		}
		return nil, fmt.Errorf("source: json at %s: unexpected %q", pointer(path), t)
	case string:
		return t, nil
	case bool:
		return t, nil
	case nil:
		return nil, nil
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case number:
		return json.Number(t.String()), nil
	}
	return nil, fmt.Errorf("source: json at %s: unexpected token %T", pointer(path), tok)
}

func readObject(dec *gojson.Decoder, path []string) (any, error) {
	out := map[string]any{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("source: json at %s: %w", pointer(path), err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("source: json at %s: expected key, got %v", pointer(path), tok)
		}
		child := append(path[:len(path):len(path)], key)
		if _, dup := out[key]; dup {
			return nil, &DuplicateKeyError{Pointer: pointer(child), Key: key}
		}
		v, err := readValue(dec, child)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("source: json at %s: %w", pointer(path), err)
	}
	return out, nil
}

func readArray(dec *gojson.Decoder, path []string) (any, error) {
	out := []any{}
	for i := 0; dec.More(); i++ {
		v, err := readValue(dec, append(path[:len(path):len(path)], strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("source: json at %s: %w", pointer(path), err)
	}
	return out, nil
}

func pointer(path []string) string {
	if len(path) == 0 {
		return "/"
	}
	esc := make([]string, len(path))
	for i, p := range path {
		esc[i] = strings.ReplaceAll(strings.ReplaceAll(p, "~", "~0"), "/", "~1")
	}
	return "/" + strings.Join(esc, "/")
}

// EncodeJSON renders v as indented JSON followed by a newline.
func EncodeJSON(v any) ([]byte, error) {
	b, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("source: json: %w", err)
	}
	return append(b, '\n'), nil
}
