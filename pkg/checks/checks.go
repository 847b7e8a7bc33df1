// Package checks is the default pluggable predicate library for the formkit
// rules engine: a catalog of named boolean checks (isEmail, isLength,
// equalsField, ...) looked up by the engine when a rule references a
// predicate by name.
//
// Importing this package registers it as the engine's library loader, so a
// blank import is enough to make every named check available:
//
//	import _ "github.com/dmitrymomot/formkit/pkg/checks"
//
// All checks expect string values; a non-string value fails the check rather
// than panicking, with the exception of the numeric family which also accepts
// Go numeric types. Checks taking parameters read them from the rule's
// options bag (e.g. isLength reads "min" and "max").
package checks

import (
	"sync"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

// Version is the library's semantic version, reported to the engine's
// compatibility gate on load.
const Version = "13.1.0"

// Library implements rules.Library over the built-in catalog.
type Library struct {
	predicates map[string]rules.Predicate
}

// Version implements rules.Library.
func (l *Library) Version() string { return Version }

// Predicate implements rules.Library.
func (l *Library) Predicate(name string) (rules.Predicate, bool) {
	p, ok := l.predicates[name]
	return p, ok
}

var (
	defaultLibrary     *Library
	defaultLibraryOnce sync.Once
)

// Default returns the shared built-in library instance.
func Default() *Library {
	defaultLibraryOnce.Do(func() {
		defaultLibrary = &Library{predicates: catalog()}
	})
	return defaultLibrary
}

func init() {
	rules.RegisterLibraryLoader(func() (rules.Library, error) {
		return Default(), nil
	})
}

func catalog() map[string]rules.Predicate {
	return map[string]rules.Predicate{
		// string checks
		"isEmpty":      IsEmpty,
		"contains":     Contains,
		"equals":       Equals,
		"equalsField":  EqualsField,
		"matches":      Matches,
		"isIn":         IsIn,
		"isLength":     IsLength,
		"isByteLength": IsByteLength,
		"isLowercase":  IsLowercase,
		"isUppercase":  IsUppercase,

		// format checks
		"isEmail":       IsEmail,
		"isURL":         IsURL,
		"isIP":          IsIP,
		"isPort":        IsPort,
		"isUUID":        IsUUID,
		"isJSON":        IsJSON,
		"isHexColor":    IsHexColor,
		"isMobilePhone": IsMobilePhone,

		// numeric and character-class checks
		"isAlpha":        IsAlpha,
		"isAlphanumeric": IsAlphanumeric,
		"isNumeric":      IsNumeric,
		"isInt":          IsInt,
		"isFloat":        IsFloat,
		"isPositive":     IsPositive,
		"isNegative":     IsNegative,
		"isDivisibleBy":  IsDivisibleBy,
	}
}

// str unwraps a string value. Every non-numeric check fails on non-strings
// instead of guessing a textual representation.
func str(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
