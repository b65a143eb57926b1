package engine

// Diagnostic codes. Each maps to a fixed message through the i18n package.
const (
	CodeUnableToCoerce    = "unable_to_coerce"
	CodeTypeCoercion      = "type_coercion"
	CodeNotInteger        = "not_integer"
	CodeMinimum           = "minimum_violated"
	CodeMaximum           = "maximum_violated"
	CodeMaxLength         = "max_length_violated"
	CodeMinLength         = "min_length_violated"
	CodeRootIndex         = "not_root_index_key"
	CodeRegexViolated     = "regex_violated"
	CodeInvalidRegex      = "invalid_regex"
	CodeInvalidKey        = "invalid_key"
	CodeExtraKey          = "extra_key"
	CodeMissingField      = "missing_field"
	CodeEnumValue         = "enum_value_not_allowed"
	CodeNoOptionsMatched  = "no_options_matched"
	CodeUnknownSchemaType = "schema_type_not_recognized"
	CodeMaxDepth          = "max_depth_exceeded"
)

// Redacted replaces confidential strings when hiding is requested.
const Redacted = "(confidential)"
