package modelcheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/modelcheck/internal/engine"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnableToCoerce    = engine.CodeUnableToCoerce
	CodeTypeCoercion      = engine.CodeTypeCoercion
	CodeNotInteger        = engine.CodeNotInteger
	CodeMinimum           = engine.CodeMinimum
	CodeMaximum           = engine.CodeMaximum
	CodeMaxLength         = engine.CodeMaxLength
	CodeMinLength         = engine.CodeMinLength
	CodeRootIndex         = engine.CodeRootIndex
	CodeRegexViolated     = engine.CodeRegexViolated
	CodeInvalidRegex      = engine.CodeInvalidRegex
	CodeInvalidKey        = engine.CodeInvalidKey
	CodeExtraKey          = engine.CodeExtraKey
	CodeMissingField      = engine.CodeMissingField
	CodeEnumValue         = engine.CodeEnumValue
	CodeNoOptionsMatched  = engine.CodeNoOptionsMatched
	CodeUnknownSchemaType = engine.CodeUnknownSchemaType
	CodeMaxDepth          = engine.CodeMaxDepth
)

// ErrUnknownModel is returned by Validate when the schema name is not part
// of the compiled model.
var ErrUnknownModel = errors.New("modelcheck: unrecognized model")

// Issue represents a single error or warning.
type Issue struct {
	Path    Path           `json:"path" yaml:"path"`
	Code    string         `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
	Value   any            `json:"value,omitempty" yaml:"value,omitempty"`
	Schema  *Schema        `json:"schema,omitempty" yaml:"schema,omitempty"`
	Params  map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}

// Pointer renders the issue path as a JSON Pointer.
func (it Issue) Pointer() string { return it.Path.Pointer() }

// Issues is a collection of validation entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. missing field: y at /y
		fmt.Fprintf(b, "%s at %s", it.Message, it.Pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ModelError is returned by Compile when a model specification is rejected.
// Issues holds the metamodel errors and warnings; Err is set when the
// specification passed the metamodel but could not be compiled (for
// example, a cyclic union).
type ModelError struct {
	Issues Issues
	Err    error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return "modelcheck: invalid model: " + e.Err.Error()
	}
	return "modelcheck: invalid model: " + e.Issues.Error()
}

func (e *ModelError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Issues
}
