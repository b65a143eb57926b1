package engine

// Kind enumerates the schema kinds understood by the engine.
type Kind int

const (
	KindInvalid Kind = iota
	KindFreeform
	KindBoolean
	KindNumber
	KindString
	KindRegex
	KindIndex
	KindList
	KindArgs
	KindObject
	KindEnum
	KindMulti
)

var kindNames = [...]string{
	KindInvalid:  "",
	KindFreeform: "freeform",
	KindBoolean:  "boolean",
	KindNumber:   "number",
	KindString:   "string",
	KindRegex:    "regex",
	KindIndex:    "index",
	KindList:     "list",
	KindArgs:     "args",
	KindObject:   "object",
	KindEnum:     "enum",
	KindMulti:    "multi",
}

// ParseKind maps a schema-language kind name to its Kind. Unknown names
// yield (KindInvalid, false).
func ParseKind(name string) (Kind, bool) {
	for k := KindFreeform; k <= KindMulti; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindInvalid, false
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindFreeform; k <= KindMulti; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return ""
	}
	return kindNames[k]
}

// MarshalText renders the kind name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
