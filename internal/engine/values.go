package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// toFloat reports the numeric value of v when v already is a number.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	}
	return 0, false
}

// parseNumber parses the textual form of a number. Empty text, NaN and
// infinities are rejected, as are the digit separators and hexadecimal
// floats that only Go number syntax allows.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}
	var f float64
	var err error
	if hasRadixPrefix(s) {
		f, err = parsePrefixedInt(s)
	} else {
		f, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// hasRadixPrefix reports whether s, ignoring a sign, starts with 0x, 0o or 0b.
func hasRadixPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func parsePrefixedInt(s string) (float64, error) {
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			return float64(u), err
		}
	}
	return 0, strconv.ErrSyntax
}

// formatNumber renders integral values below 1e21 without an exponent and
// everything else in the shortest round-tripping form.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// stringify renders a scalar the way it is compared against literal words.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return string(t)
	case fmt.Stringer:
		return t.String()
	}
	if f, ok := toFloat(v); ok {
		return formatNumber(f)
	}
	return fmt.Sprint(v)
}

type entry struct {
	key string
	val any
}

// entries lists the members of a record in a stable order. Ordered
// sequences are treated as records keyed by decimal index.
func entries(v any) (out []entry, fromList bool, ok bool) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out = make([]entry, len(keys))
		for i, k := range keys {
			out[i] = entry{key: k, val: t[k]}
		}
		return out, false, true
	case []any:
		out = make([]entry, len(t))
		for i, e := range t {
			out[i] = entry{key: strconv.Itoa(i), val: e}
		}
		return out, true, true
	}
	return nil, false, false
}

// indexKey parses a canonical decimal index.
func indexKey(key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}
