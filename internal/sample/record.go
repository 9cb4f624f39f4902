package sample

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is one estimation sample. Values carry whatever types the JSON
// decoder produced; use the accessors rather than asserting directly.
type Record map[string]any

// String returns the named field rendered as a string. Absent or nil fields
// yield fallback; non-string scalars are formatted.
func (r Record) String(key, fallback string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return fallback
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

// Float returns the named field coerced to float64.
func (r Record) Float(key string) (float64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	return AsFloat(v)
}

// Rank returns the sample rank coerced integer-via-float, defaulting to 1
// when the field is absent or unparsable.
func (r Record) Rank() int {
	v, ok := r["rank"]
	if !ok {
		return 1
	}
	f, ok := AsFloat(v)
	if !ok {
		return 1
	}
	return int(f)
}

// AsFloat coerces an arbitrary decoded value to float64. Strings are parsed;
// anything unparsable reports ok=false.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
