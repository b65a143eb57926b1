// Package middleware validates HTTP request bodies against a compiled
// modelcheck model.
package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/modelcheck"
	"github.com/reoring/modelcheck/source"
)

// DefaultMaxBodyBytes bounds the request body read by Validate.
const DefaultMaxBodyBytes int64 = 1 << 20

// ctxKeyResult is a typed context key for storing the validation Result.
type ctxKeyResult struct{}

// ContextWithResult attaches a Result to the context.
func ContextWithResult(ctx context.Context, res modelcheck.Result) context.Context {
	return context.WithValue(ctx, ctxKeyResult{}, res)
}

// ResultFromContext retrieves the Result stored by Validate.
func ResultFromContext(ctx context.Context) (modelcheck.Result, bool) {
	v, ok := ctx.Value(ctxKeyResult{}).(modelcheck.Result)
	return v, ok
}

// SanitizedFromContext is a shortcut for the sanitized request body.
func SanitizedFromContext(ctx context.Context) (any, bool) {
	res, ok := ResultFromContext(ctx)
	if !ok {
		return nil, false
	}
	return res.Sanitized, true
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues []modelcheck.Issue) map[string]any {
	return map[string]any{"issues": issues}
}

// Validate returns middleware that decodes the JSON request body and
// validates it against schema. Undecodable bodies get 400, invalid ones 422
// with ErrorPayload; valid requests continue with the Result in the
// request context. opts are applied over the validator's defaults.
func Validate(v *modelcheck.Validator, schema string, opts ...modelcheck.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, DefaultMaxBodyBytes))
			if err != nil {
				status := http.StatusBadRequest
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					status = http.StatusRequestEntityTooLarge
				}
				writeJSON(w, status, map[string]any{"error": err.Error()})
				return
			}
			value, err := source.JSON(body)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
				return
			}
			res, err := v.Validate(value, schema, opts...)
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
				return
			}
			if !res.OK() {
				writeJSON(w, http.StatusUnprocessableEntity, ErrorPayload(res.Errors))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithResult(r.Context(), res)))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	b, err := gojson.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(b, '\n'))
}
