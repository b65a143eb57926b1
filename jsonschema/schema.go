// Package jsonschema exports compiled modelcheck models as JSON Schema
// (draft 2020-12) documents.
package jsonschema

// Draft is the dialect written to the $schema keyword.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
// It covers the keywords the schema language can express.
type Schema struct {
	// Core
	Ref     string `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Comment string `json:"$comment,omitempty" yaml:"$comment,omitempty"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Format  string `json:"format,omitempty" yaml:"format,omitempty"`
	Const   any    `json:"const,omitempty" yaml:"const,omitempty"`

	// Annotations
	WriteOnly bool `json:"writeOnly,omitempty" yaml:"writeOnly,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties *Schema            `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	PropertyNames        *Schema            `json:"propertyNames,omitempty" yaml:"propertyNames,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
}

// Document is a self-contained JSON Schema with one definition per model
// entry. Ref points at the root definition when one was requested.
type Document struct {
	Schema string             `json:"$schema" yaml:"$schema"`
	Ref    string             `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Defs   map[string]*Schema `json:"$defs" yaml:"$defs"`
}
