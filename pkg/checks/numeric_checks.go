package checks

import (
	"math"
	"regexp"
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	numericRegex      = regexp.MustCompile(`^[0-9]+$`)
	intRegex          = regexp.MustCompile(`^[+-]?[0-9]+$`)
)

// IsAlpha passes for strings of ASCII letters only.
func IsAlpha(v any, _ rules.Options) bool {
	s, ok := str(v)
	return ok && alphaRegex.MatchString(s)
}

// IsAlphanumeric passes for strings of ASCII letters and digits only.
func IsAlphanumeric(v any, _ rules.Options) bool {
	s, ok := str(v)
	return ok && alphanumericRegex.MatchString(s)
}

// IsNumeric passes for strings of decimal digits only.
func IsNumeric(v any, _ rules.Options) bool {
	s, ok := str(v)
	return ok && numericRegex.MatchString(s)
}

// IsInt passes for Go integer values and optionally signed integer strings.
func IsInt(v any, _ rules.Options) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	s, ok := str(v)
	return ok && intRegex.MatchString(s)
}

// IsFloat passes for Go numeric values and decimal number strings.
func IsFloat(v any, _ rules.Options) bool {
	if _, ok := toFloat(v); ok {
		return true
	}
	return false
}

// IsPositive passes for numbers greater than zero.
func IsPositive(v any, _ rules.Options) bool {
	f, ok := toFloat(v)
	return ok && f > 0
}

// IsNegative passes for numbers less than zero.
func IsNegative(v any, _ rules.Options) bool {
	f, ok := toFloat(v)
	return ok && f < 0
}

// IsDivisibleBy passes when the value divides evenly by the "number" option.
func IsDivisibleBy(v any, opts rules.Options) bool {
	f, ok := toFloat(v)
	if !ok {
		return false
	}
	divisor, ok := toFloat(opts["number"])
	if !ok || divisor == 0 {
		return false
	}
	return math.Mod(f, divisor) == 0
}

// toFloat widens Go numerics and parses numeric strings.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	}
	return 0, false
}
