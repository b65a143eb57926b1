package engine

// Schema is a compiled (kind, metadata) pair. Name is set for schemas that
// are entries of a model and empty for inline ones. Meta keeps the sanitized
// metadata the schema was compiled from; the remaining fields are its typed
// projection.
type Schema struct {
	Name string
	Kind Kind
	Meta map[string]any

	// kind is the raw type name, kept for unrecognized kinds.
	kind string

	// number
	integer  bool
	min, max *float64

	// string
	minLength, maxLength *int
	pattern              *Regex
	rootIndex            bool
	confidential         bool

	// index, list
	elements  *Schema
	validKeys *Regex

	// args, object
	fields Fields

	// enum; variants holds one object (or args, when strict is false)
	// schema per allowed value.
	valueField, metaField string
	partial               bool
	variants              map[string]*Schema

	// multi
	allowed []*Schema
}

// Fields is an ordered set of declared record fields.
type Fields struct {
	Names   []string
	Schemas map[string]*Schema
}

// Has reports whether name is declared.
func (f Fields) Has(name string) bool {
	_, ok := f.Schemas[name]
	return ok
}

// TypeName returns the kind name as written in the model, including names
// that did not resolve to a known kind.
func (s *Schema) TypeName() string {
	if s.Kind == KindInvalid {
		return s.kind
	}
	return s.Kind.String()
}

func (s *Schema) String() string {
	if s == nil {
		return "<nil>"
	}
	if s.Name != "" {
		return s.Name
	}
	return s.TypeName()
}

// MarshalText renders the schema by name, or by kind when inline.
func (s *Schema) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Elements returns the per-element schema of an index or list.
func (s *Schema) Elements() *Schema { return s.elements }

// Fields returns the declared fields of an args or object schema.
func (s *Schema) Fields() Fields { return s.fields }

// Allowed returns the alternatives of a multi schema.
func (s *Schema) Allowed() []*Schema { return s.allowed }

// Number returns the constraints of a number schema.
func (s *Schema) Number() (integer bool, min, max *float64) { return s.integer, s.min, s.max }

// StringRules describes the constraints of a string schema.
type StringRules struct {
	MinLength, MaxLength *int
	Pattern              *Regex
	RootIndex            bool
	Confidential         bool
}

// StringRules returns the constraints of a string schema.
func (s *Schema) StringRules() StringRules {
	return StringRules{
		MinLength:    s.minLength,
		MaxLength:    s.maxLength,
		Pattern:      s.pattern,
		RootIndex:    s.rootIndex,
		Confidential: s.confidential,
	}
}

// ValidKeys returns the key pattern of an index schema, if any.
func (s *Schema) ValidKeys() *Regex { return s.validKeys }

// Tag returns the discriminator and payload field names of an enum schema.
func (s *Schema) Tag() (valueField, metaField string) { return s.valueField, s.metaField }

// Variants returns the payload schema per allowed enum value.
func (s *Schema) Variants() map[string]*Schema { return s.variants }

// anonymous returns a metadata-less schema of the given kind name.
func anonymous(kind string) *Schema {
	k, _ := ParseKind(kind)
	s := &Schema{Kind: k, kind: kind, Meta: map[string]any{}}
	s.defaults()
	return s
}

func (s *Schema) defaults() {
	switch s.Kind {
	case KindIndex, KindList:
		if s.elements == nil {
			s.elements = anonymous(KindObject.String())
		}
	case KindEnum:
		if s.valueField == "" {
			s.valueField = "value"
		}
		if s.metaField == "" {
			s.metaField = "meta"
		}
	}
}
