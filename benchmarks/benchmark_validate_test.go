package benchmarks_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/reoring/modelcheck"
	"github.com/reoring/modelcheck/source"
)

// ---- Helpers ----

func userModel(tb testing.TB) *modelcheck.Validator {
	tb.Helper()
	v, err := modelcheck.Compile(map[string]any{
		"user": map[string]any{"type": "object", "meta": map[string]any{"fields": map[string]any{
			"id":     map[string]any{"type": "string", "meta": map[string]any{"regex": "/^u_[0-9]+$/"}},
			"name":   "string",
			"age":    map[string]any{"type": "number", "meta": map[string]any{"integer": true, "min": 0}},
			"active": "boolean",
			"meta":   "freeform",
		}}},
		"users": map[string]any{"type": "list", "meta": map[string]any{"elements": "user"}},
		"value": map[string]any{"type": "multi", "meta": map[string]any{"allowed": []any{
			"number", "boolean", "string",
		}}},
	})
	if err != nil {
		tb.Fatalf("compile failed: %v", err)
	}
	return v
}

// generateUsers returns a JSON array of objects of the form:
// [{"id":"u_0","name":"n0","age":0,"active":true,"meta":{"score":0}}, ...]
func generateUsers(n int) []byte {
	var buf bytes.Buffer
	buf.Grow(n * 80)
	buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		s := strconv.Itoa(i)
		buf.WriteString(`{"id":"u_` + s + `","name":"n` + s + `","age":` + s + `,"active":true,"meta":{"score":` + s + `}}`)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// ---- Benchmarks ----

func BenchmarkValidate_SmallObject(b *testing.B) {
	v := userModel(b)
	in := map[string]any{"id": "u_1", "name": "alice", "age": 30, "active": true, "meta": nil}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		res, err := v.Validate(in, "user")
		if err != nil || !res.OK() {
			b.Fatalf("unexpected result: %v %v", err, res.Errors)
		}
	}
}

func BenchmarkValidate_LargeList(b *testing.B) {
	v := userModel(b)
	doc, err := source.JSON(generateUsers(1000))
	if err != nil {
		b.Fatalf("decode: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := v.Validate(doc, "users")
		if err != nil || !res.OK() {
			b.Fatalf("unexpected result: %v %v", err, res.Errors)
		}
	}
}

func BenchmarkDecodeAndValidate(b *testing.B) {
	v := userModel(b)
	data := generateUsers(1000)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		doc, err := source.JSON(data)
		if err != nil {
			b.Fatalf("decode: %v", err)
		}
		if _, err := v.Validate(doc, "users"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate_Multi(b *testing.B) {
	v := userModel(b)
	inputs := []any{1.5, "true", "word", true}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := v.Validate(inputs[i%len(inputs)], "value"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompile_Metamodel(b *testing.B) {
	spec := modelcheck.MetamodelSpec()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := modelcheck.Compile(spec); err != nil {
			b.Fatal(err)
		}
	}
}
