package engine

import (
	"fmt"
	"sort"
)

// Model maps schema names to compiled schemas.
type Model map[string]*Schema

// Names returns the schema names in sorted order.
func (m Model) Names() []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CompileModel turns a model spec of name -> {type, meta} into a Model.
// String references resolve to model entries first and to bare kinds
// otherwise. The spec is expected to have passed the metamodel; shape
// errors are still reported rather than panicking.
func CompileModel(spec map[string]any) (Model, error) {
	model := make(Model, len(spec))
	for name := range spec {
		model[name] = &Schema{Name: name}
	}
	c := compiler{model: model}
	for _, name := range model.Names() {
		raw, ok := spec[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("engine: schema %q: expected {type, meta}, got %T", name, spec[name])
		}
		if err := c.fill(model[name], raw); err != nil {
			return nil, fmt.Errorf("engine: schema %q: %w", name, err)
		}
	}
	if err := CheckUnionCycles(model); err != nil {
		return nil, err
	}
	return model, nil
}

type compiler struct {
	model Model
}

func (c compiler) fill(s *Schema, raw map[string]any) error {
	typeName, ok := raw["type"].(string)
	if !ok {
		return fmt.Errorf("type must be a string, got %T", raw["type"])
	}
	meta, _ := raw["meta"].(map[string]any)
	if meta == nil {
		meta = map[string]any{}
	}
	s.kind = typeName
	s.Kind, _ = ParseKind(typeName)
	s.Meta = meta

	var err error
	switch s.Kind {
	case KindNumber:
		s.integer, _ = meta["integer"].(bool)
		s.min = optFloat(meta["min"])
		s.max = optFloat(meta["max"])
	case KindString:
		s.minLength = optInt(meta["min_length"])
		s.maxLength = optInt(meta["max_length"])
		s.rootIndex, _ = meta["root_index"].(bool)
		s.confidential, _ = meta["confidential"].(bool)
		if s.pattern, err = optRegex(meta["regex"]); err != nil {
			return err
		}
	case KindIndex, KindList:
		if s.elements, err = c.ref(meta["elements"]); err != nil {
			return err
		}
		if s.validKeys, err = optRegex(meta["valid_keys"]); err != nil {
			return err
		}
	case KindArgs, KindObject:
		if s.fields, err = c.fieldSet(meta["fields"]); err != nil {
			return err
		}
	case KindEnum:
		s.valueField, _ = meta["value_field"].(string)
		s.metaField, _ = meta["meta_field"].(string)
		if strict, ok := meta["strict"].(bool); ok {
			s.partial = !strict
		}
		opts, _ := meta["options"].(map[string]any)
		s.variants = make(map[string]*Schema, len(opts))
		for tag, rawFields := range opts {
			fs, err := c.fieldSet(rawFields)
			if err != nil {
				return fmt.Errorf("option %q: %w", tag, err)
			}
			kind := KindObject
			if s.partial {
				kind = KindArgs
			}
			s.variants[tag] = &Schema{
				Kind:   kind,
				kind:   kind.String(),
				Meta:   map[string]any{"fields": rawFields},
				fields: fs,
			}
		}
	case KindMulti:
		alts, _ := meta["allowed"].([]any)
		s.allowed = make([]*Schema, len(alts))
		for i, a := range alts {
			if s.allowed[i], err = c.ref(a); err != nil {
				return err
			}
		}
	}
	s.defaults()
	return nil
}

// ref resolves a schema reference. A nil reference stays nil and is
// defaulted by the owning schema.
func (c compiler) ref(v any) (*Schema, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case *Schema:
		return t, nil
	case string:
		if s, ok := c.model[t]; ok {
			return s, nil
		}
		return anonymous(t), nil
	case map[string]any:
		s := &Schema{}
		if err := c.fill(s, t); err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported schema reference %T", v)
}

func (c compiler) fieldSet(v any) (Fields, error) {
	raw, _ := v.(map[string]any)
	fs := Fields{Names: make([]string, 0, len(raw)), Schemas: make(map[string]*Schema, len(raw))}
	for name := range raw {
		fs.Names = append(fs.Names, name)
	}
	sort.Strings(fs.Names)
	for _, name := range fs.Names {
		s, err := c.ref(raw[name])
		if err != nil {
			return Fields{}, fmt.Errorf("field %q: %w", name, err)
		}
		if s == nil {
			s = anonymous(KindObject.String())
		}
		fs.Schemas[name] = s
	}
	return fs, nil
}

func optFloat(v any) *float64 {
	if f, ok := toFloat(v); ok {
		return &f
	}
	return nil
}

func optInt(v any) *int {
	if f, ok := toFloat(v); ok {
		n := int(f)
		return &n
	}
	return nil
}

func optRegex(v any) (*Regex, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case *Regex:
		return t, nil
	case string:
		return ParseRegex(t)
	}
	return nil, fmt.Errorf("unsupported pattern %T", v)
}
