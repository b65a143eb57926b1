package jsonschema

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/reoring/modelcheck"
	"github.com/reoring/modelcheck/internal/engine"
)

// ErrUnknownRoot is returned when the requested root is not a model entry.
var ErrUnknownRoot = errors.New("jsonschema: unknown root schema")

// Export renders every schema of the model under $defs. A non-empty root
// also sets the document's $ref to that definition.
//
// The schema language is more lenient than JSON Schema: coercions (such as
// numeric strings accepted by number) have no equivalent, so the export
// describes the sanitized shape of values rather than every accepted input.
func Export(v *modelcheck.Validator, root string) (*Document, error) {
	doc := &Document{Schema: Draft, Defs: map[string]*Schema{}}
	for _, name := range v.Schemas() {
		s, _ := v.Schema(name)
		doc.Defs[name] = convert(s)
	}
	if root != "" {
		if _, ok := doc.Defs[root]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRoot, root)
		}
		doc.Ref = Ref(root)
	}
	return doc, nil
}

// Ref returns the reference to a model entry inside an exported document.
func Ref(name string) string {
	tok := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return "#/$defs/" + url.PathEscape(tok)
}

// ref converts a schema that is used from inside another one. Named schemas
// become references so recursive models stay finite.
func ref(s *modelcheck.Schema) *Schema {
	if s == nil {
		return &Schema{Type: "object"}
	}
	if s.Name != "" {
		return &Schema{Ref: Ref(s.Name)}
	}
	return convert(s)
}

func convert(s *modelcheck.Schema) *Schema {
	switch s.Kind {
	case engine.KindFreeform:
		return &Schema{}
	case engine.KindBoolean:
		return &Schema{Type: "boolean"}
	case engine.KindNumber:
		integer, min, max := s.Number()
		out := &Schema{Type: "number", Minimum: min, Maximum: max}
		if integer {
			out.Type = "integer"
		}
		return out
	case engine.KindString:
		r := s.StringRules()
		out := &Schema{Type: "string", MinLength: r.MinLength, MaxLength: r.MaxLength, WriteOnly: r.Confidential}
		if r.Pattern != nil {
			out.Pattern = r.Pattern.Source()
			if f := r.Pattern.Flags(); f != "" {
				out.Comment = "pattern flags: " + f
			}
		}
		if r.RootIndex {
			out.Comment = joinComment(out.Comment, "must name a key of the document root")
		}
		return out
	case engine.KindRegex:
		return &Schema{Type: "string", Format: "regex"}
	case engine.KindIndex:
		out := &Schema{Type: "object", AdditionalProperties: ref(s.Elements())}
		if vk := s.ValidKeys(); vk != nil {
			out.PropertyNames = &Schema{Pattern: vk.Source()}
		}
		return out
	case engine.KindList:
		return &Schema{Type: "array", Items: ref(s.Elements())}
	case engine.KindArgs:
		return record(s.Fields(), false)
	case engine.KindObject:
		return record(s.Fields(), true)
	case engine.KindEnum:
		return tagged(s)
	case engine.KindMulti:
		out := &Schema{AnyOf: []*Schema{}}
		for _, alt := range s.Allowed() {
			out.AnyOf = append(out.AnyOf, ref(alt))
		}
		return out
	}
	return &Schema{Comment: "unrecognized schema type " + s.TypeName()}
}

func record(fs engine.Fields, required bool) *Schema {
	out := &Schema{Type: "object", Properties: make(map[string]*Schema, len(fs.Names))}
	for _, name := range fs.Names {
		out.Properties[name] = ref(fs.Schemas[name])
	}
	if required && len(fs.Names) > 0 {
		out.Required = append([]string(nil), fs.Names...)
	}
	return out
}

func tagged(s *modelcheck.Schema) *Schema {
	valueField, metaField := s.Tag()
	variants := s.Variants()
	tags := make([]string, 0, len(variants))
	for tag := range variants {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	out := &Schema{OneOf: []*Schema{}}
	for _, tag := range tags {
		payload := variants[tag]
		alt := &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				valueField: {Const: tag},
				metaField:  convert(payload),
			},
			Required: []string{valueField},
		}
		if payload.Kind == engine.KindObject && len(payload.Fields().Names) > 0 {
			alt.Required = append(alt.Required, metaField)
		}
		out.OneOf = append(out.OneOf, alt)
	}
	return out
}

func joinComment(a, b string) string {
	if a == "" {
		return b
	}
	return a + "; " + b
}
