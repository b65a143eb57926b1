package modelcheck

import (
	"fmt"

	"github.com/reoring/modelcheck/internal/engine"
)

// Schema is a compiled (kind, metadata) pair of a model.
type Schema = engine.Schema

// Kind is the closed set of schema kinds.
type Kind = engine.Kind

// Validatable lets a value present an alternate representation of itself
// for validation. The validator probes it before applying any schema.
type Validatable = engine.Validatable

// Redacted replaces confidential strings when HideConfidential is set.
const Redacted = engine.Redacted

// Status is the outcome of a validation.
type Status string

const (
	StatusOK     Status = "ok"
	StatusErrors Status = "errors"
)

// Result is the outcome of Validate. An ok result carries the sanitized
// value and warnings; an errors result carries only the errors.
type Result struct {
	Status    Status `json:"status" yaml:"status"`
	Sanitized any    `json:"sanitized,omitempty" yaml:"sanitized,omitempty"`
	Warnings  Issues `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors    Issues `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// OK reports whether validation produced no errors.
func (r Result) OK() bool { return r.Status == StatusOK }

// Err returns the errors as an error value, or nil for an ok result.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return r.Errors
}

func newResult(out *engine.Output) Result {
	if len(out.Errors) > 0 {
		return Result{Status: StatusErrors, Errors: toIssues(out.Errors)}
	}
	return Result{Status: StatusOK, Sanitized: out.Sanitized, Warnings: toIssues(out.Warnings)}
}

// Validator validates values against a compiled model. It is immutable and
// safe for concurrent use.
type Validator struct {
	model engine.Model
	opts  Options
}

// Compile checks spec against the metamodel and compiles it. Any metamodel
// error or warning rejects the spec with a *ModelError. opts become the
// defaults of every Validate call.
func Compile(spec any, opts ...Option) (*Validator, error) {
	o := Options{}.apply(opts)
	res := CheckModel(spec)
	if !res.OK() || len(res.Warnings) > 0 {
		iss := AppendIssues(nil, res.Errors...)
		iss = AppendIssues(iss, res.Warnings...)
		return nil, &ModelError{Issues: iss}
	}
	sanitized, _ := res.Sanitized.(map[string]any)
	model, err := engine.CompileModel(sanitized)
	if err != nil {
		return nil, &ModelError{Err: err}
	}
	o.logger().Debug("model compiled", "schemas", len(model), "default_model", o.DefaultModel)
	return &Validator{model: model, opts: o}, nil
}

// MustCompile is like Compile but panics on error. Intended for models
// embedded in programs.
func MustCompile(spec any, opts ...Option) *Validator {
	v, err := Compile(spec, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate validates value against the named schema. An empty name selects
// the default model. Call options are applied over the construction
// options. Problems with the value are reported in the Result; the error
// is only set when the schema name is unknown.
func (v *Validator) Validate(value any, schema string, opts ...Option) (Result, error) {
	o := v.opts.apply(opts)
	if schema == "" {
		schema = o.DefaultModel
	}
	s, ok := v.model[schema]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownModel, schema)
	}
	res := newResult(engine.Validate(value, s, o.engine()))
	o.logger().Debug("value validated", "schema", schema, "status", string(res.Status),
		"errors", len(res.Errors), "warnings", len(res.Warnings))
	return res, nil
}

// Schemas returns the names of the compiled schemas in sorted order.
func (v *Validator) Schemas() []string { return v.model.Names() }

// Schema returns the compiled schema with the given name.
func (v *Validator) Schema(name string) (*Schema, bool) {
	s, ok := v.model[name]
	return s, ok
}
