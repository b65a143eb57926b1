package engine

// Validatable lets a value present an alternate representation of itself
// for validation.
type Validatable interface {
	Validatable() any
}

// Recurse validates a child value against a schema at path+seg.
type Recurse func(v any, s *Schema, seg any) *Output

type handler func(c *Context, v any, s *Schema, o *Output, r Recurse)

// handlers is indexed by Kind. KindInvalid has no entry.
var handlers = [...]handler{
	KindFreeform: freeformHandler,
	KindBoolean:  booleanHandler,
	KindNumber:   numberHandler,
	KindString:   stringHandler,
	KindRegex:    regexHandler,
	KindIndex:    indexHandler,
	KindList:     listHandler,
	KindArgs:     argsHandler,
	KindObject:   objectHandler,
	KindEnum:     enumHandler,
	KindMulti:    multiHandler,
}

// Validate runs schema s over value v with root as the context value.
func Validate(v any, s *Schema, opts Options) *Output {
	root := v
	if h, ok := v.(Validatable); ok {
		root = h.Validatable()
	}
	c := &Context{Root: root, Options: opts}
	return c.walk(v, s, Path{})
}

func (c *Context) walk(v any, s *Schema, path Path) *Output {
	if s == nil {
		s = anonymous(KindObject.String())
	}
	if h, ok := v.(Validatable); ok {
		v = h.Validatable()
	}
	o := &Output{Value: v, Schema: s, Path: path}
	if limit := c.Options.maxDepth(); limit > 0 && len(path) > limit {
		o.Err(CodeMaxDepth)
		return o
	}
	if s.Kind == KindInvalid {
		o.Err(CodeUnknownSchemaType, "kind", s.kind)
		return o
	}
	recurse := func(cv any, cs *Schema, seg any) *Output {
		return c.walk(cv, cs, path.Append(seg))
	}
	handlers[s.Kind](c, v, s, o, recurse)
	return o
}
