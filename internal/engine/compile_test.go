package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestCompileModel_ResolvesReferences(t *testing.T) {
	m, err := CompileModel(map[string]any{
		"coord": map[string]any{"type": "number"},
		"point": map[string]any{"type": "object", "meta": map[string]any{
			"fields": map[string]any{"x": "coord", "y": "number", "z": nil},
		}},
		"path": map[string]any{"type": "list", "meta": map[string]any{"elements": "point"}},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	point := m["point"]
	if point.Kind != KindObject || point.Name != "point" {
		t.Fatalf("point = %+v", point)
	}
	fs := point.Fields()
	if strings.Join(fs.Names, ",") != "x,y,z" {
		t.Fatalf("field order = %v", fs.Names)
	}
	if fs.Schemas["x"] != m["coord"] {
		t.Fatalf("x does not reference the model entry")
	}
	if y := fs.Schemas["y"]; y.Kind != KindNumber || y.Name != "" {
		t.Fatalf("y = %+v", y)
	}
	if z := fs.Schemas["z"]; z.Kind != KindObject {
		t.Fatalf("nil field schema should default to object, got %v", z.Kind)
	}
	if !fs.Has("x") || fs.Has("w") {
		t.Fatalf("Has is wrong")
	}
	if m["path"].Elements() != point {
		t.Fatalf("list elements do not reference point")
	}
	if got := strings.Join(m.Names(), ","); got != "coord,path,point" {
		t.Fatalf("names = %q", got)
	}
}

func TestCompileModel_Defaults(t *testing.T) {
	m, err := CompileModel(map[string]any{
		"idx":  map[string]any{"type": "index"},
		"tag":  map[string]any{"type": "enum", "meta": map[string]any{"options": map[string]any{"a": map[string]any{}}}},
		"loose": map[string]any{"type": "enum", "meta": map[string]any{
			"strict": false, "options": map[string]any{"a": map[string]any{}},
		}},
		"weird": map[string]any{"type": "tuple"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if e := m["idx"].Elements(); e == nil || e.Kind != KindObject {
		t.Fatalf("index elements default = %v", e)
	}
	tag := m["tag"]
	if tag.valueField != "value" || tag.metaField != "meta" || tag.partial {
		t.Fatalf("enum defaults = %q %q %v", tag.valueField, tag.metaField, tag.partial)
	}
	if tag.variants["a"].Kind != KindObject {
		t.Fatalf("strict variant kind = %v", tag.variants["a"].Kind)
	}
	if m["loose"].variants["a"].Kind != KindArgs {
		t.Fatalf("loose variant kind = %v", m["loose"].variants["a"].Kind)
	}
	if w := m["weird"]; w.Kind != KindInvalid || w.TypeName() != "tuple" {
		t.Fatalf("unknown kind = %v %q", w.Kind, w.TypeName())
	}
}

func TestCompileModel_ShapeErrors(t *testing.T) {
	cases := map[string]map[string]any{
		"not a record":  {"a": "number"},
		"type missing":  {"a": map[string]any{"meta": map[string]any{}}},
		"bad pattern":   {"a": map[string]any{"type": "string", "meta": map[string]any{"regex": "/(/"}}},
		"bad reference": {"a": map[string]any{"type": "list", "meta": map[string]any{"elements": 5}}},
	}
	for name, spec := range cases {
		if _, err := CompileModel(spec); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestCheckUnionCycles(t *testing.T) {
	_, err := CompileModel(map[string]any{
		"a": map[string]any{"type": "multi", "meta": map[string]any{"allowed": []any{"b"}}},
		"b": map[string]any{"type": "multi", "meta": map[string]any{"allowed": []any{"c", "number"}}},
		"c": map[string]any{"type": "multi", "meta": map[string]any{"allowed": []any{"b"}}},
	})
	var ce *CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CycleError, got %v", err)
	}
	if got := strings.Join(ce.Chain, " -> "); got != "b -> c -> b" {
		t.Fatalf("chain = %q", got)
	}

	_, err = CompileModel(map[string]any{
		"self": map[string]any{"type": "multi", "meta": map[string]any{"allowed": []any{"self"}}},
	})
	if !errors.As(err, &ce) || strings.Join(ce.Chain, " -> ") != "self -> self" {
		t.Fatalf("self cycle = %v", err)
	}

	_, err = CompileModel(map[string]any{
		"tree": map[string]any{"type": "multi", "meta": map[string]any{"allowed": []any{
			"string",
			map[string]any{"type": "list", "meta": map[string]any{"elements": "tree"}},
		}}},
		"alias": map[string]any{"type": "multi", "meta": map[string]any{"allowed": []any{"tree"}}},
	})
	if err != nil {
		t.Fatalf("recursion through a container is fine: %v", err)
	}
}
