package engine

func indexHandler(_ *Context, v any, s *Schema, o *Output, r Recurse) {
	members, fromList, ok := entries(v)
	if !ok {
		o.Err(CodeUnableToCoerce)
		return
	}
	if fromList && len(members) > 0 {
		o.Warn(CodeTypeCoercion)
	}
	sanitized := make(map[string]any, len(members))
	for _, m := range members {
		child := r(m.val, s.elements, m.key)
		sanitized[m.key] = child.Sanitized
		if s.validKeys != nil && !s.validKeys.MatchString(m.key) {
			o.Err(CodeInvalidKey, "key", m.key)
		}
		o.Merge(child)
	}
	o.Sanitized = sanitized
}

func listHandler(_ *Context, v any, s *Schema, o *Output, r Recurse) {
	items, ok := v.([]any)
	if !ok {
		o.Err(CodeUnableToCoerce)
		return
	}
	sanitized := make([]any, len(items))
	for i, item := range items {
		child := r(item, s.elements, i)
		sanitized[i] = child.Sanitized
		o.Merge(child)
	}
	o.Sanitized = sanitized
}

func argsHandler(_ *Context, v any, s *Schema, o *Output, r Recurse) {
	record(v, s, o, r)
}

// record validates the declared fields present in v. It reports false when
// v is not a mapping.
func record(v any, s *Schema, o *Output, r Recurse) bool {
	sanitized := map[string]any{}
	o.Sanitized = sanitized
	if v == nil {
		return true
	}
	members, _, ok := entries(v)
	if !ok {
		o.Err(CodeUnableToCoerce)
		return false
	}
	for _, m := range members {
		fs, declared := s.fields.Schemas[m.key]
		if !declared {
			o.WarnAt(m.key, m.val, nil, CodeExtraKey, "key", m.key)
			continue
		}
		child := r(m.val, fs, m.key)
		o.Merge(child)
		sanitized[m.key] = child.Sanitized
	}
	return true
}

func objectHandler(_ *Context, v any, s *Schema, o *Output, r Recurse) {
	if !record(v, s, o, r) {
		return
	}
	sanitized, _ := o.Sanitized.(map[string]any)
	for _, name := range s.fields.Names {
		if _, ok := sanitized[name]; !ok {
			o.ErrAt(name, nil, s.fields.Schemas[name], CodeMissingField, "key", name)
		}
	}
}
