package engine

import (
	"errors"
	"regexp"

	"github.com/dlclark/regexp2"
)

// literalPattern matches the "/source/flags" notation accepted for patterns.
var literalPattern = regexp.MustCompile(`^/(.*)/(i?m?|mi)$`)

// ErrInvalidRegex is returned when a pattern cannot be parsed or compiled.
var ErrInvalidRegex = errors.New("invalid regex")

// Regex is a compiled pattern with the two flags the schema language keeps:
// case-insensitive and multiline. Patterns use ECMAScript syntax, so
// lookahead and backreferences are available.
type Regex struct {
	source     string
	ignoreCase bool
	multiline  bool
	re         *regexp2.Regexp
}

// CompileRegex compiles source with the given flags.
func CompileRegex(source string, ignoreCase, multiline bool) (*Regex, error) {
	opt := regexp2.RegexOptions(regexp2.ECMAScript)
	if ignoreCase {
		opt |= regexp2.IgnoreCase
	}
	if multiline {
		opt |= regexp2.Multiline
	}
	re, err := regexp2.Compile(source, opt)
	if err != nil {
		return nil, errors.Join(ErrInvalidRegex, err)
	}
	return &Regex{source: source, ignoreCase: ignoreCase, multiline: multiline, re: re}, nil
}

// ParseRegex parses the "/source/flags" notation.
func ParseRegex(s string) (*Regex, error) {
	m := literalPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, ErrInvalidRegex
	}
	flags := m[2]
	ignoreCase, multiline := false, false
	for _, f := range flags {
		switch f {
		case 'i':
			ignoreCase = true
		case 'm':
			multiline = true
		}
	}
	return CompileRegex(m[1], ignoreCase, multiline)
}

// MustRegex is ParseRegex for pattern literals known to be valid.
func MustRegex(s string) *Regex {
	r, err := ParseRegex(s)
	if err != nil {
		panic("engine: " + err.Error() + ": " + s)
	}
	return r
}

// Source returns the pattern text without delimiters or flags.
func (r *Regex) Source() string { return r.source }

// Flags returns the normalized flag string ("", "i", "m" or "im").
func (r *Regex) Flags() string {
	f := ""
	if r.ignoreCase {
		f += "i"
	}
	if r.multiline {
		f += "m"
	}
	return f
}

// MatchString reports whether s contains a match. Matcher errors count as no
// match.
func (r *Regex) MatchString(s string) bool {
	ok, err := r.re.MatchString(s)
	return err == nil && ok
}

// String renders the pattern in "/source/flags" notation.
func (r *Regex) String() string { return "/" + r.source + "/" + r.Flags() }

// MarshalText renders the pattern in "/source/flags" notation.
func (r *Regex) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
