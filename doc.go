// Package modelcheck validates and sanitizes plain nested values (maps,
// slices and scalars) against declarative models of named schemas.
//
// A model is a mapping of schema name to {type, meta}. Eleven kinds are
// available: freeform, boolean, number, string, regex, index, list, args,
// object, enum and multi. Models are themselves checked against a fixed
// metamodel, written in the same schema language, before they are compiled;
// any metamodel error or warning rejects the model.
//
// Validation never fails on bad data. Each problem is reported as an Issue
// tagged with the path where it occurred, and a best-effort sanitized copy
// of the value is produced alongside. Warnings mark data that was accepted
// after coercion (for example the string "3" accepted as a number).
//
// Design policy:
//   - Keep only public APIs in the root package; put the engine under internal/.
//   - Decoding text into values lives in source/, the HTTP adapter in
//     middleware/, JSON Schema export in jsonschema/, and the CLI under
//     cmd/modelcheck.
//   - Prefer black-box testing against public APIs. Generated property tests
//     sit behind a build tag: go test -tags property ./...
//
// Typical usage:
//
//	v, err := modelcheck.Compile(map[string]any{
//		"point": map[string]any{"type": "object", "meta": map[string]any{
//			"fields": map[string]any{"x": "number", "y": "number"},
//		}},
//	}, modelcheck.WithDefaultModel("point"))
//	res, err := v.Validate(map[string]any{"x": "3", "y": 4}, "")
//	// res.Status == "ok", res.Sanitized == {x: 3, y: 4}, one type_coercion warning at /x
package modelcheck
