package modelcheck

import (
	"strings"

	"github.com/reoring/modelcheck/internal/engine"
)

// metamodelSpec returns the schema language described in itself. Each call
// builds a fresh value so callers may keep or modify it.
func metamodelSpec() map[string]any {
	kinds := make([]string, 0, 11)
	for _, k := range engine.Kinds() {
		kinds = append(kinds, k.String())
	}
	fieldsOf := func() map[string]any { return map[string]any{"fields": "object fields"} }
	return map[string]any{
		"model": map[string]any{"type": "index", "meta": map[string]any{
			"elements":   "schema",
			"valid_keys": engine.MustRegex(`/^(?!type).+|type.+$/`),
		}},
		"primitive string": map[string]any{"type": "string", "meta": map[string]any{
			"regex": engine.MustRegex("/^(" + strings.Join(kinds, "|") + ")$/"),
		}},
		"composite schema": map[string]any{"type": "multi", "meta": map[string]any{
			"allowed": []any{
				"schema",
				"primitive string",
				map[string]any{"type": "string", "meta": map[string]any{"root_index": true}},
			},
		}},
		"natural number": map[string]any{"type": "number", "meta": map[string]any{
			"integer": true, "min": 0.0,
		}},
		"object fields": map[string]any{"type": "index", "meta": map[string]any{
			"elements": "composite schema",
		}},
		"schema": map[string]any{"type": "enum", "meta": map[string]any{
			"value_field": "type",
			"meta_field":  "meta",
			"strict":      false,
			"options": map[string]any{
				"freeform": map[string]any{},
				"boolean":  map[string]any{},
				"regex":    map[string]any{},
				"number": map[string]any{
					"integer": "boolean",
					"max":     "number",
					"min":     "number",
				},
				"string": map[string]any{
					"max_length":   "natural number",
					"min_length":   "natural number",
					"regex":        "regex",
					"root_index":   "boolean",
					"confidential": "boolean",
				},
				"enum": map[string]any{
					"value_field": "string",
					"meta_field":  "string",
					"strict":      "boolean",
					"options": map[string]any{"type": "index", "meta": map[string]any{
						"elements": "object fields",
					}},
				},
				"index": map[string]any{
					"elements":   "composite schema",
					"valid_keys": "regex",
				},
				"list": map[string]any{
					"elements": "composite schema",
				},
				"args":   fieldsOf(),
				"object": fieldsOf(),
				"multi": map[string]any{
					"allowed": map[string]any{"type": "list", "meta": map[string]any{
						"elements": "composite schema",
					}},
				},
			},
		}},
	}
}

// metamodel is compiled once, without validation, from the bootstrap spec.
var metamodel = func() *Validator {
	m, err := engine.CompileModel(metamodelSpec())
	if err != nil {
		panic("modelcheck: metamodel: " + err.Error())
	}
	return &Validator{model: m, opts: Options{DefaultModel: "model"}}
}()

// MetamodelSpec returns a fresh copy of the metamodel specification: the
// schema language expressed as a model of itself.
func MetamodelSpec() map[string]any { return metamodelSpec() }

// Metamodel returns the validator for model specifications. Its default
// schema is "model".
func Metamodel() *Validator { return metamodel }

// CheckModel validates spec against the metamodel without compiling it.
// Patterns in the sanitized spec are kept as compiled regex values.
func CheckModel(spec any) Result {
	res, _ := metamodel.Validate(spec, "model", WithRegexAsString(false))
	return res
}
