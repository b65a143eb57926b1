package modelcheck

import "github.com/reoring/modelcheck/internal/engine"

// Path is the ordered trail of keys (string), indices (int) and union
// branches (Branch) from the validated root to a node. It renders as a JSON
// Pointer through Pointer.
type Path = engine.Path

// Branch is the path segment recorded for the i-th alternative tried by a
// multi schema. It renders as "(multi: i)".
type Branch = engine.Branch

// PathOf builds a Path from segments.
func PathOf(segs ...any) Path {
	if len(segs) == 0 {
		return Path{}
	}
	return Path(segs)
}
