package modelcheck

import "github.com/reoring/modelcheck/internal/engine"

func toIssues(ds []engine.Diagnostic) Issues {
	iss := make(Issues, len(ds))
	for i, d := range ds {
		iss[i] = Issue{
			Path:    d.Path,
			Code:    d.Code,
			Message: d.Message,
			Value:   d.Value,
			Schema:  d.Schema,
			Params:  d.Params,
		}
	}
	return iss
}

// At returns the issues recorded at the given JSON Pointer.
func (iss Issues) At(pointer string) Issues {
	var out Issues
	for _, it := range iss {
		if it.Pointer() == pointer {
			out = append(out, it)
		}
	}
	return out
}

// Codes lists the issue codes in order, which is convenient in tests and
// log fields.
func (iss Issues) Codes() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Code
	}
	return out
}
