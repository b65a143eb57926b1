package engine

// DefaultMaxDepth bounds the path length of a single validation.
const DefaultMaxDepth = 512

// Options are the per-call settings visible to handlers.
type Options struct {
	RegexAsString    bool
	HideConfidential bool
	// MaxDepth limits the path length; 0 means DefaultMaxDepth and a
	// negative value disables the limit.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Context is shared by every node of one validation call. It is never
// mutated after creation.
type Context struct {
	Root    any
	Options Options
}

// rootHasKey reports whether the root value is a record containing key.
func (c *Context) rootHasKey(key string) bool {
	switch r := c.Root.(type) {
	case map[string]any:
		_, ok := r[key]
		return ok
	case []any:
		i, ok := indexKey(key)
		return ok && i < len(r)
	}
	return false
}
