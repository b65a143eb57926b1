package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/modelcheck"
	"github.com/reoring/modelcheck/middleware"
)

func newHandler(t *testing.T, schema string) http.Handler {
	t.Helper()
	v, err := modelcheck.Compile(map[string]any{
		"point": map[string]any{"type": "object", "meta": map[string]any{
			"fields": map[string]any{"x": "number", "y": "number"},
		}},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sanitized, ok := middleware.SanitizedFromContext(r.Context())
		if !ok {
			http.Error(w, "no result", http.StatusInternalServerError)
			return
		}
		res, _ := middleware.ResultFromContext(r.Context())
		w.Header().Set("X-Warnings", strings.Join(res.Warnings.Codes(), ","))
		_ = json.NewEncoder(w).Encode(sanitized)
	})
	return middleware.Validate(v, schema)(next)
}

func do(h http.Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/points", strings.NewReader(body)))
	return rec
}

func TestValidate_PassesSanitizedBody(t *testing.T) {
	rec := do(newHandler(t, "point"), `{"x": "3", "y": 4}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"x": 3.0, "y": 4.0}, got); diff != "" {
		t.Fatalf("sanitized mismatch (-want +got):\n%s", diff)
	}
	if w := rec.Header().Get("X-Warnings"); w != modelcheck.CodeTypeCoercion {
		t.Fatalf("warnings header = %q", w)
	}
}

func TestValidate_RejectsInvalidBody(t *testing.T) {
	rec := do(newHandler(t, "point"), `{"x": 1}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var payload struct {
		Issues []struct {
			Code    string `json:"code"`
			Message string `json:"message"`
			Path    []any  `json:"path"`
		} `json:"issues"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v body=%s", err, rec.Body)
	}
	if len(payload.Issues) != 1 {
		t.Fatalf("issues = %+v", payload.Issues)
	}
	it := payload.Issues[0]
	if it.Code != modelcheck.CodeMissingField || it.Message != "missing field: y" {
		t.Fatalf("issue = %+v", it)
	}
	if diff := cmp.Diff([]any{"y"}, it.Path); diff != "" {
		t.Fatalf("path (-want +got):\n%s", diff)
	}
}

func TestValidate_BadRequests(t *testing.T) {
	h := newHandler(t, "point")
	for _, body := range []string{`{"x": `, `{"x": 1, "x": 2}`, `{} {}`, strings.Repeat("[", 600) + strings.Repeat("]", 600)} {
		if rec := do(h, body); rec.Code != http.StatusBadRequest {
			t.Fatalf("%q: status = %d", body, rec.Code)
		}
	}
	big := `{"x": "` + strings.Repeat("1", int(middleware.DefaultMaxBodyBytes)) + `", "y": 1}`
	if rec := do(h, big); rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("oversized body: status = %d", rec.Code)
	}
}

func TestValidate_UnknownSchema(t *testing.T) {
	if rec := do(newHandler(t, "nope"), `{}`); rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestResultFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := middleware.ResultFromContext(req.Context()); ok {
		t.Fatalf("unexpected result")
	}
	if _, ok := middleware.SanitizedFromContext(req.Context()); ok {
		t.Fatalf("unexpected sanitized value")
	}
	ctx := middleware.ContextWithResult(req.Context(), modelcheck.Result{Status: modelcheck.StatusOK, Sanitized: 1})
	if v, ok := middleware.SanitizedFromContext(ctx); !ok || v != 1 {
		t.Fatalf("sanitized = %v %v", v, ok)
	}
}
