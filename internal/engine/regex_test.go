package engine

import (
	"errors"
	"testing"
)

func TestParseRegex(t *testing.T) {
	cases := []struct {
		in, source, flags string
	}{
		{"/abc/", "abc", ""},
		{"/abc/i", "abc", "i"},
		{"/abc/m", "abc", "m"},
		{"/abc/im", "abc", "im"},
		{"/abc/mi", "abc", "im"},
		{"/a/b/", "a/b", ""},
		{"//", "", ""},
	}
	for _, tc := range cases {
		r, err := ParseRegex(tc.in)
		if err != nil {
			t.Fatalf("ParseRegex(%q): %v", tc.in, err)
		}
		if r.Source() != tc.source || r.Flags() != tc.flags {
			t.Fatalf("ParseRegex(%q) = %q %q", tc.in, r.Source(), r.Flags())
		}
		if r.String() != "/"+tc.source+"/"+tc.flags {
			t.Fatalf("String() = %q", r.String())
		}
	}
	for _, bad := range []string{"abc", "/abc/g", "/abc/ii", "/(/", "/abc"} {
		if _, err := ParseRegex(bad); !errors.Is(err, ErrInvalidRegex) {
			t.Fatalf("ParseRegex(%q) err = %v", bad, err)
		}
	}
}

func TestRegex_MatchString(t *testing.T) {
	keys := MustRegex(`/^(?!type).+|type.+$/`)
	for key, want := range map[string]bool{
		"point":  true,
		"types":  true,
		"typed":  true,
		"a type": true,
		"type":   false,
		"":       false,
	} {
		if got := keys.MatchString(key); got != want {
			t.Fatalf("valid key %q = %v, want %v", key, got, want)
		}
	}

	ci := MustRegex(`/^abc$/i`)
	if !ci.MatchString("ABC") {
		t.Fatalf("case-insensitive flag ignored")
	}
	ml := MustRegex(`/^b$/m`)
	if !ml.MatchString("a\nb\nc") {
		t.Fatalf("multiline flag ignored")
	}
	if MustRegex(`/^b$/`).MatchString("a\nb\nc") {
		t.Fatalf("anchors must not match lines without the multiline flag")
	}
}

func TestCompileRegex_Options(t *testing.T) {
	cases := []struct {
		ignoreCase, multiline bool
		flags                 string
		in                    string
		want                  bool
	}{
		{false, false, "", "x\nAB", false},
		{true, false, "i", "Ab", true},
		{false, true, "m", "x\nab", true},
		{true, true, "im", "x\nAB", true},
	}
	for _, tc := range cases {
		r, err := CompileRegex(`^ab$`, tc.ignoreCase, tc.multiline)
		if err != nil {
			t.Fatalf("CompileRegex(%q): %v", tc.flags, err)
		}
		if r.Flags() != tc.flags {
			t.Fatalf("Flags() = %q, want %q", r.Flags(), tc.flags)
		}
		if got := r.MatchString(tc.in); got != tc.want {
			t.Fatalf("/^ab$/%s on %q = %v, want %v", tc.flags, tc.in, got, tc.want)
		}
	}
	if _, err := CompileRegex(`(`, false, false); !errors.Is(err, ErrInvalidRegex) {
		t.Fatalf("expected ErrInvalidRegex, got %v", err)
	}
}

func TestMustRegex_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustRegex("nope")
}

func TestKind(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k, got, ok)
		}
	}
	if len(Kinds()) != 11 {
		t.Fatalf("expected 11 kinds, got %d", len(Kinds()))
	}
	if k, ok := ParseKind("tuple"); ok || k != KindInvalid {
		t.Fatalf("unknown kind parsed as %v", k)
	}
	if Kind(99).String() != "" || KindInvalid.String() != "" {
		t.Fatalf("out of range kinds have no name")
	}
	if len(handlers) != int(KindMulti)+1 {
		t.Fatalf("handler table out of sync with kinds")
	}
	for _, k := range Kinds() {
		if handlers[k] == nil {
			t.Fatalf("no handler for %s", k)
		}
	}
}
