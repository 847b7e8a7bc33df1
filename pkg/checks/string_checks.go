package checks

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

// IsEmpty passes for strings that are empty after trimming whitespace.
func IsEmpty(v any, _ rules.Options) bool {
	s, ok := str(v)
	return ok && strings.TrimSpace(s) == ""
}

// Contains passes when the value contains the "seed" option substring.
func Contains(v any, opts rules.Options) bool {
	s, ok := str(v)
	if !ok {
		return false
	}
	seed, ok := opts["seed"].(string)
	return ok && strings.Contains(s, seed)
}

// Equals passes when the value equals the "comparison" option.
func Equals(v any, opts rules.Options) bool {
	return v == opts["comparison"]
}

// EqualsField passes when the value equals another form field, named by the
// "field" option. This is the canonical cross-field check (password
// confirmation and the like).
func EqualsField(v any, opts rules.Options) bool {
	field, ok := opts["field"].(string)
	if !ok {
		return false
	}
	return v == opts.FormData()[field]
}

// Matches passes when the value matches the "pattern" option regular
// expression. The pattern compiles on every call; register a custom rule with
// a literal validator when the check is hot.
func Matches(v any, opts rules.Options) bool {
	s, ok := str(v)
	if !ok {
		return false
	}
	pattern, ok := opts["pattern"].(string)
	if !ok {
		return false
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// IsIn passes when the value is one of the "values" option entries.
func IsIn(v any, opts rules.Options) bool {
	switch values := opts["values"].(type) {
	case []string:
		s, ok := str(v)
		if !ok {
			return false
		}
		for _, candidate := range values {
			if s == candidate {
				return true
			}
		}
	case []any:
		for _, candidate := range values {
			if v == candidate {
				return true
			}
		}
	}
	return false
}

// IsLength passes when the rune count is within the "min" and "max" options.
// Either bound may be omitted.
func IsLength(v any, opts rules.Options) bool {
	s, ok := str(v)
	if !ok {
		return false
	}
	return withinBounds(utf8.RuneCountInString(s), opts)
}

// IsByteLength is IsLength counted in bytes rather than runes.
func IsByteLength(v any, opts rules.Options) bool {
	s, ok := str(v)
	if !ok {
		return false
	}
	return withinBounds(len(s), opts)
}

func withinBounds(n int, opts rules.Options) bool {
	if min, ok := intOption(opts, "min"); ok && n < min {
		return false
	}
	if max, ok := intOption(opts, "max"); ok && n > max {
		return false
	}
	return true
}

func intOption(opts rules.Options, key string) (int, bool) {
	switch t := opts[key].(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	}
	return 0, false
}

// IsLowercase passes when the value has no uppercase letters.
func IsLowercase(v any, _ rules.Options) bool {
	s, ok := str(v)
	return ok && s == strings.ToLower(s)
}

// IsUppercase passes when the value has no lowercase letters.
func IsUppercase(v any, _ rules.Options) bool {
	s, ok := str(v)
	return ok && s == strings.ToUpper(s)
}
