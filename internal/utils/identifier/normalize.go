// Package identifier canonicalizes catalog content identifiers.
// The upstream catalog, the pet-policy store, and the detail endpoint do not
// agree on an identifier format: the same place may arrive as 125266,
// "125266", " 125266 ", or 125266.0 depending on the source and its JSON
// decoding. All identifier comparisons in the application go through
// Normalize so that equality is reliable.
package identifier

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Normalize converts an identifier in any supported representation to its
// canonical form: a trimmed decimal-integer string. It is idempotent, and
// never fails; input that cannot be interpreted numerically is returned as a
// best-effort trimmed string.
//
// Examples:
//
//	Normalize(125266)       // "125266"
//	Normalize("125266")     // "125266"
//	Normalize(" 125266 ")   // "125266"
//	Normalize(125266.0)     // "125266"
func Normalize(v any) string {
	switch id := v.(type) {
	case string:
		return NormalizeString(id)
	case int:
		return strconv.Itoa(id)
	case int32:
		return strconv.FormatInt(int64(id), 10)
	case int64:
		return strconv.FormatInt(id, 10)
	case float32:
		return normalizeFloat(float64(id))
	case float64:
		return normalizeFloat(id)
	case json.Number:
		return NormalizeString(id.String())
	case nil:
		return ""
	default:
		return NormalizeString(fmt.Sprintf("%v", id))
	}
}

// NormalizeString canonicalizes a string-typed identifier. Surrounding
// whitespace is dropped, and numeric forms with a redundant fraction
// ("125266.0") collapse to the plain integer form.
func NormalizeString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// Fast path: already a plain decimal integer.
	if isPlainInteger(s) {
		return strings.TrimLeft(s, "+")
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return normalizeFloat(f)
	}

	// Best-effort fallback for malformed input.
	return s
}

// isPlainInteger reports whether s consists solely of decimal digits with an
// optional sign.
func isPlainInteger(s string) bool {
	if s == "" {
		return false
	}
	start := 0
	if s[0] == '+' || s[0] == '-' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}
	for i := start; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// normalizeFloat renders an integral float as a decimal integer. Non-integral
// values keep their shortest decimal representation rather than erroring.
func normalizeFloat(f float64) string {
	// int64 conversion is undefined outside its range, so magnitudes past
	// ±2^63 take the float formatting path instead.
	if f == math.Trunc(f) && !math.IsInf(f, 0) &&
		f >= math.MinInt64 && f < math.MaxInt64 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
