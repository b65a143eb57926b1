package engine

import (
	"math"
	"regexp"
	"unicode/utf8"
)

func freeformHandler(_ *Context, v any, _ *Schema, o *Output, _ Recurse) {
	o.Sanitized = v
}

func booleanHandler(_ *Context, v any, _ *Schema, o *Output, _ Recurse) {
	if b, ok := v.(bool); ok {
		o.Sanitized = b
		return
	}
	switch stringify(v) {
	case "true":
		o.Sanitized = true
		o.Warn(CodeTypeCoercion)
	case "false":
		o.Sanitized = false
		o.Warn(CodeTypeCoercion)
	default:
		o.Err(CodeUnableToCoerce)
	}
}

func numberHandler(_ *Context, v any, s *Schema, o *Output, _ Recurse) {
	f, ok := toFloat(v)
	if !ok {
		o.Warn(CodeTypeCoercion)
		if _, isBool := v.(bool); !isBool {
			f, ok = parseNumber(stringify(v))
		}
	}
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		o.Err(CodeUnableToCoerce)
		return
	}
	if s.integer && math.Mod(f, 1) != 0 {
		o.Err(CodeNotInteger)
	}
	if s.min != nil && f < *s.min {
		o.Err(CodeMinimum)
	}
	if s.max != nil && f > *s.max {
		o.Err(CodeMaximum)
	}
	o.Sanitized = f
}

func stringHandler(c *Context, v any, s *Schema, o *Output, _ Recurse) {
	var str string
	switch t := v.(type) {
	case string:
		str = t
	case bool:
		o.Warn(CodeTypeCoercion)
		str = stringify(t)
	default:
		if _, ok := toFloat(v); !ok {
			o.Err(CodeUnableToCoerce)
			return
		}
		o.Warn(CodeTypeCoercion)
		str = stringify(v)
	}
	n := utf8.RuneCountInString(str)
	if s.maxLength != nil && n > *s.maxLength {
		o.Err(CodeMaxLength)
	}
	if s.minLength != nil && n < *s.minLength {
		o.Err(CodeMinLength)
	}
	if s.rootIndex && !c.rootHasKey(str) {
		o.Err(CodeRootIndex)
	}
	if s.pattern != nil && !s.pattern.MatchString(str) {
		o.Err(CodeRegexViolated)
	}
	if s.confidential && c.Options.HideConfidential {
		str = Redacted
	}
	o.Sanitized = str
}

func regexHandler(c *Context, v any, _ *Schema, o *Output, _ Recurse) {
	var (
		re  *Regex
		err error
	)
	switch p := v.(type) {
	case *Regex:
		re = p
	case *regexp.Regexp:
		re, err = CompileRegex(p.String(), false, false)
	case string:
		re, err = ParseRegex(p)
	default:
		o.Err(CodeUnableToCoerce)
		return
	}
	if err != nil {
		o.Err(CodeInvalidRegex)
		return
	}
	if c.Options.RegexAsString {
		o.Sanitized = re.String()
		return
	}
	o.Sanitized = re
}
