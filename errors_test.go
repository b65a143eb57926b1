package modelcheck_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reoring/modelcheck"
	"github.com/reoring/modelcheck/i18n"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := modelcheck.Issues{
		{Path: modelcheck.PathOf("a"), Message: "unable to coerce"},
		{Path: modelcheck.PathOf("b", 0), Message: "type coercion"},
		{Path: modelcheck.PathOf(), Message: "no options matched"},
		{Path: modelcheck.PathOf("d"), Message: "missing field: d"},
	}
	want := "unable to coerce at /a; type coercion at /b/0; no options matched at /; ... (total 4)"
	if got := iss.Error(); got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
	if got := (modelcheck.Issues{}).Error(); got != "" {
		t.Fatalf("empty summary = %q", got)
	}
}

func TestIssue_PointerEscapes(t *testing.T) {
	it := modelcheck.Issue{Path: modelcheck.PathOf("a/b", "c~d", 3)}
	if got := it.Pointer(); got != "/a~1b/c~0d/3" {
		t.Fatalf("pointer = %q", got)
	}
}

func TestAppendIssues(t *testing.T) {
	var dst modelcheck.Issues
	dst = modelcheck.AppendIssues(dst)
	if dst == nil || len(dst) != 0 {
		t.Fatalf("expected empty non-nil issues, got %#v", dst)
	}
	dst = modelcheck.AppendIssues(dst, modelcheck.Issue{Code: "a"}, modelcheck.Issue{Code: "b"})
	if got := strings.Join(dst.Codes(), ","); got != "a,b" {
		t.Fatalf("codes = %q", got)
	}
}

func TestAsIssues(t *testing.T) {
	if _, ok := modelcheck.AsIssues(nil); ok {
		t.Fatalf("nil error has no issues")
	}
	if _, ok := modelcheck.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error has no issues")
	}
	v := mustCompile(t, pointModel())
	res := mustValidate(t, v, map[string]any{}, "point")
	iss, ok := modelcheck.AsIssues(res.Err())
	if !ok || len(iss) != 2 {
		t.Fatalf("expected 2 issues from result error, got %v %v", iss, ok)
	}
}

func TestIssue_SchemaNamesReferencedModel(t *testing.T) {
	v := mustCompile(t, map[string]any{
		"coord": map[string]any{"type": "number"},
		"point": map[string]any{"type": "object", "meta": map[string]any{
			"fields": map[string]any{"x": "coord"},
		}},
	})
	res := mustValidate(t, v, map[string]any{"x": "n/a"}, "point")
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v", res.Errors)
	}
	e := res.Errors[0]
	if e.Schema == nil || e.Schema.String() != "coord" {
		t.Fatalf("schema = %v", e.Schema)
	}
	if e.Value != "n/a" {
		t.Fatalf("value = %#v", e.Value)
	}
}

func TestMessages_FollowLanguage(t *testing.T) {
	i18n.SetLanguage("ja-JP")
	defer i18n.SetLanguage("en")

	v := mustCompile(t, pointModel())
	res := mustValidate(t, v, map[string]any{"x": 1}, "point")
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v", res.Errors)
	}
	if got := res.Errors[0].Message; got != "フィールドがありません: y" {
		t.Fatalf("message = %q", got)
	}
	if res.Errors[0].Code != modelcheck.CodeMissingField {
		t.Fatalf("code = %q", res.Errors[0].Code)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v := mustCompile(t, pointModel(), modelcheck.WithLogger(logger))
	if !strings.Contains(buf.String(), "model compiled") {
		t.Fatalf("compile not logged: %q", buf.String())
	}
	mustValidate(t, v, map[string]any{"x": 1}, "point")
	out := buf.String()
	if !strings.Contains(out, "value validated") || !strings.Contains(out, "status=errors") {
		t.Fatalf("validation not logged: %q", out)
	}

	buf.Reset()
	mustValidate(t, v, map[string]any{"x": 1, "y": 2}, "point", modelcheck.WithLogger(nil))
	if buf.Len() != 0 {
		t.Fatalf("nil logger should discard, got %q", buf.String())
	}
}

func TestWithOptions_ReplacesDefaults(t *testing.T) {
	v := mustCompile(t, map[string]any{"r": map[string]any{"type": "regex"}},
		modelcheck.WithDefaultModel("r"), modelcheck.WithRegexAsString(true))
	res := mustValidate(t, v, "/a/", "")
	if res.Sanitized != "/a/" {
		t.Fatalf("sanitized = %#v", res.Sanitized)
	}
	res = mustValidate(t, v, "/a/", "r", modelcheck.WithOptions(modelcheck.Options{}))
	if _, isString := res.Sanitized.(string); isString {
		t.Fatalf("WithOptions should reset RegexAsString")
	}
}
