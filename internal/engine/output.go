package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/modelcheck/i18n"
)

// Branch is the path segment for the i-th alternative of a multi schema.
type Branch int

func (b Branch) String() string { return "(multi: " + strconv.Itoa(int(b)) + ")" }

// MarshalText renders the branch segment.
func (b Branch) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// Path is the ordered trail of keys (string), indices (int) and union
// branches (Branch) from the root to a node.
type Path []any

// Append returns a copy of p extended with seg.
func (p Path) Append(seg any) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// Pointer renders p as an RFC 6901 JSON Pointer. Branch segments are kept
// in their "(multi: i)" form.
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		s := fmt.Sprint(seg)
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

func (p Path) String() string { return p.Pointer() }

// Diagnostic is one error or warning recorded against a node.
type Diagnostic struct {
	Value   any
	Schema  *Schema
	Path    Path
	Code    string
	Message string
	Params  map[string]any
}

// Output accumulates the result of validating one node: the best-effort
// sanitized value plus the errors and warnings of the node and its children.
type Output struct {
	Value     any
	Schema    *Schema
	Path      Path
	Sanitized any
	Errors    []Diagnostic
	Warnings  []Diagnostic
}

func (o *Output) diag(code string, data map[string]string) Diagnostic {
	d := Diagnostic{Value: o.Value, Schema: o.Schema, Path: o.Path, Code: code, Message: i18n.T(code, data)}
	if len(data) > 0 {
		d.Params = make(map[string]any, len(data))
		for k, v := range data {
			d.Params[k] = v
		}
	}
	return d
}

// Err records an error on this node. kv are alternating key/value pairs
// used as message parameters.
func (o *Output) Err(code string, kv ...string) {
	o.Errors = append(o.Errors, o.diag(code, pairs(kv)))
}

// Warn records a warning on this node.
func (o *Output) Warn(code string, kv ...string) {
	o.Warnings = append(o.Warnings, o.diag(code, pairs(kv)))
}

// ErrAt records an error against a member of this node that has no output
// of its own, such as a missing field.
func (o *Output) ErrAt(seg any, v any, s *Schema, code string, kv ...string) {
	d := o.diag(code, pairs(kv))
	d.Path, d.Value, d.Schema = o.Path.Append(seg), v, s
	o.Errors = append(o.Errors, d)
}

// WarnAt records a warning against a member of this node.
func (o *Output) WarnAt(seg any, v any, s *Schema, code string, kv ...string) {
	d := o.diag(code, pairs(kv))
	d.Path, d.Value, d.Schema = o.Path.Append(seg), v, s
	o.Warnings = append(o.Warnings, d)
}

// Merge appends the diagnostics of a child.
func (o *Output) Merge(child *Output) {
	o.Errors = append(o.Errors, child.Errors...)
	o.Warnings = append(o.Warnings, child.Warnings...)
}

// Proxy replaces this node's result with another node's result.
func (o *Output) Proxy(other *Output) {
	o.Sanitized = other.Sanitized
	o.Errors = other.Errors
	o.Warnings = other.Warnings
}

func pairs(kv []string) map[string]string {
	if len(kv) < 2 {
		return nil
	}
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m
}
