package engine

import (
	"fmt"
	"sort"
)

func enumHandler(_ *Context, v any, s *Schema, o *Output, r Recurse) {
	rec, ok := v.(map[string]any)
	if !ok {
		o.Err(CodeUnableToCoerce)
		return
	}
	raw := rec[s.valueField]
	tag, _ := raw.(string)
	variant, allowed := s.variants[tag]
	if _, isString := raw.(string); !isString || !allowed {
		o.Err(CodeEnumValue, "value", fmt.Sprint(raw))
		return
	}
	child := r(rec[s.metaField], variant, s.metaField)
	o.Merge(child)
	o.Sanitized = map[string]any{
		s.valueField: tag,
		s.metaField:  child.Sanitized,
	}
}

// multiHandler picks the alternative with the fewest errors, then the fewest
// warnings, then the earliest declaration. Only a zero-error pick replaces
// the node; otherwise every attempt's diagnostics stay merged under
// "no options matched".
func multiHandler(_ *Context, v any, s *Schema, o *Output, r Recurse) {
	o.Err(CodeNoOptionsMatched)
	attempts := make([]*Output, len(s.allowed))
	for i, alt := range s.allowed {
		attempts[i] = r(v, alt, Branch(i))
		o.Merge(attempts[i])
	}
	sort.SliceStable(attempts, func(i, j int) bool {
		a, b := attempts[i], attempts[j]
		if len(a.Errors) != len(b.Errors) {
			return len(a.Errors) < len(b.Errors)
		}
		return len(a.Warnings) < len(b.Warnings)
	})
	if len(attempts) > 0 && len(attempts[0].Errors) == 0 {
		o.Proxy(attempts[0])
	}
}
