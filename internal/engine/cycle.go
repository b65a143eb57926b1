package engine

import "strings"

// CycleError reports a chain of multi schemas that hand the same value to
// each other forever.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return "engine: cyclic union: " + strings.Join(e.Chain, " -> ")
}

// CheckUnionCycles rejects models in which a multi schema can reach itself
// through alternatives that are multi schemas too. Every other kind either
// consumes input before recursing or does not recurse, so these are the only
// cycles that cannot terminate.
func CheckUnionCycles(m Model) error {
	const (
		white = iota
		grey
		black
	)
	color := map[*Schema]int{}
	var stack []*Schema
	var visit func(s *Schema) error
	visit = func(s *Schema) error {
		switch color[s] {
		case grey:
			start := 0
			for i, f := range stack {
				if f == s {
					start = i
					break
				}
			}
			chain := make([]string, 0, len(stack)-start+1)
			for _, f := range stack[start:] {
				chain = append(chain, f.String())
			}
			return &CycleError{Chain: append(chain, s.String())}
		case black:
			return nil
		}
		color[s] = grey
		stack = append(stack, s)
		for _, alt := range s.allowed {
			if alt != nil && alt.Kind == KindMulti {
				if err := visit(alt); err != nil {
					return err
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[s] = black
		return nil
	}
	for _, name := range m.Names() {
		if s := m[name]; s.Kind == KindMulti {
			if err := visit(s); err != nil {
				return err
			}
		}
	}
	return nil
}
