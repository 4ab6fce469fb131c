package params

import (
	"math"
	"regexp"
	"strconv"
)

var (
	leadingInt   = regexp.MustCompile(`^\s*[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^\s*[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
)

// ParseInt reads the leading integer of a field value the way a browser
// number field hands it over: "42", " 42px" and "42.9" all yield 42. The
// second result is false when no digits lead the value.
func ParseInt(s string) (float64, bool) {
	m := leadingInt.FindString(s)
	if m == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(trimSpace(m), 64)
	if err != nil {
		return math.NaN(), false
	}
	return v, true
}

// ParseFloat reads the leading decimal number of a field value: "12.5%"
// yields 12.5.
func ParseFloat(s string) (float64, bool) {
	m := leadingFloat.FindString(s)
	if m == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(trimSpace(m), 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN(), false
	}
	return v, true
}

// FormatInt renders a display value for a field.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

func trimSpace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return s[i:]
}

func clampInt(v float64, lo, hi int) int {
	if math.IsNaN(v) {
		return lo
	}
	r := int(math.Round(v))
	if r < lo {
		return lo
	}
	if r > hi {
		return hi
	}
	return r
}
