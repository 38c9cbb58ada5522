// Package payload provides total, never-panicking accessors over untrusted
// backend JSON. Every accessor takes a dot-delimited path and a fallback; the
// fallback is returned the moment a path segment is missing, null, or of an
// untraversable type.
package payload

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Parse wraps raw JSON bytes for extraction. Invalid input yields a value for
// which every accessor returns its fallback.
func Parse(raw []byte) gjson.Result {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}
	}
	return gjson.ParseBytes(raw)
}

// String returns the string at path. Non-null scalars are stringified from
// their JSON text; objects and arrays yield their raw JSON.
func String(doc gjson.Result, path string, fallback string) string {
	r := doc.Get(path)
	switch {
	case !r.Exists() || r.Type == gjson.Null:
		return fallback
	case r.Type == gjson.String:
		return r.Str
	default:
		return r.String()
	}
}

// Number returns the finite number at path, coercing numeric strings and
// booleans the way the upstream's own clients do.
func Number(doc gjson.Result, path string, fallback float64) float64 {
	r := doc.Get(path)
	switch r.Type {
	case gjson.Number:
		return r.Num
	case gjson.String:
		n, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return fallback
		}
		return n
	case gjson.True:
		return 1
	case gjson.False:
		return 0
	default:
		return fallback
	}
}

// Array returns the elements at path. A non-array object is tolerated by
// taking its values in document order; anything else yields the fallback.
func Array(doc gjson.Result, path string, fallback []gjson.Result) []gjson.Result {
	r := doc.Get(path)
	switch {
	case r.IsArray():
		return r.Array()
	case r.IsObject():
		vals := make([]gjson.Result, 0)
		r.ForEach(func(_, value gjson.Result) bool {
			vals = append(vals, value)
			return true
		})
		return vals
	default:
		return fallback
	}
}

// Object returns the value at path only if it is a non-array object.
func Object(doc gjson.Result, path string, fallback gjson.Result) gjson.Result {
	r := doc.Get(path)
	if r.IsObject() {
		return r
	}
	return fallback
}

// Values is Array decoded to plain Go values; never nil.
func Values(doc gjson.Result, path string) []any {
	arr := Array(doc, path, nil)
	out := make([]any, 0, len(arr))
	for _, r := range arr {
		out = append(out, r.Value())
	}
	return out
}

// ObjectMap is Object decoded to a plain map; never nil.
func ObjectMap(doc gjson.Result, path string) map[string]any {
	out := map[string]any{}
	r := Object(doc, path, gjson.Result{})
	if !r.IsObject() {
		return out
	}
	for k, v := range r.Map() {
		out[k] = v.Value()
	}
	return out
}
