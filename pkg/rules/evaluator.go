package rules

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strings"
)

// entry is one normalized rule-set element: a key plus its raw local value.
// A bare name normalizes to an empty config map.
type entry struct {
	key   string
	local any
}

// Evaluate checks value against an ordered rule set. It returns a nil Failure
// when every rule passes (or the set is empty), the first failing rule's key
// and message otherwise. Rules after the first failure are never invoked.
//
// The rule-set argument accepts a bare rule name, a single key→config map, or
// a slice of either; any other shape fails with ErrTypeConfig. formData is the
// complete current form values and is exposed to every predicate under
// Options[FormDataKey].
func (r *Registry) Evaluate(value any, ruleSet any, formData map[string]any) (*Failure, error) {
	entries, err := normalizeSet(ruleSet)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		cfg, err := r.resolve(e.key, e.local, formData)
		if err != nil {
			return nil, err
		}

		ok, err := runConfig(cfg, value)
		if err != nil {
			return nil, err
		}
		if cfg.Negate {
			ok = !ok
		}
		if !ok {
			return &Failure{RuleKey: cfg.Key, Message: cfg.ErrorMessage}, nil
		}
	}

	return nil, nil
}

// Evaluate checks value against a rule set using the Default registry.
func Evaluate(value any, ruleSet any, formData map[string]any) (*Failure, error) {
	return Default().Evaluate(value, ruleSet, formData)
}

// runConfig invokes a single resolved rule. The reserved isRequired key has
// intrinsic semantics and never consults a predicate; every other key must
// have resolved to a callable by now.
func runConfig(cfg Config, value any) (bool, error) {
	if cfg.Key == RequiredKey {
		return isPresent(value), nil
	}
	if cfg.Predicate == nil {
		return false, fmt.Errorf("%w: rule %q has no predicate; register one, supply a validator function, or make sure the optional predicate library is available",
			ErrMissingPredicate, cfg.Key)
	}
	return cfg.Predicate(value, cfg.Options), nil
}

// isPresent implements the intrinsic isRequired check: empty values are nil,
// false, numeric zero, NaN, and strings blank after trimming. Collections are
// never considered empty here, matching the engine's historical behavior.
func isPresent(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case bool:
		return t
	case int:
		return t != 0
	case int8:
		return t != 0
	case int16:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case uint:
		return t != 0
	case uint8:
		return t != 0
	case uint16:
		return t != 0
	case uint32:
		return t != 0
	case uint64:
		return t != 0
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}

// normalizeSet flattens a rule-set argument into ordered entries. Map entries
// holding several keys evaluate in lexical key order; use separate slice
// elements when inter-key order matters.
func normalizeSet(ruleSet any) ([]entry, error) {
	switch t := ruleSet.(type) {
	case string:
		return []entry{{key: t, local: map[string]any{}}}, nil
	case map[string]any:
		return entriesFromMap(t), nil
	case Options:
		return entriesFromMap(t), nil
	case map[string]string:
		out := make([]entry, 0, len(t))
		for _, k := range slices.Sorted(maps.Keys(t)) {
			out = append(out, entry{key: k, local: t[k]})
		}
		return out, nil
	case []string:
		out := make([]entry, 0, len(t))
		for _, name := range t {
			out = append(out, entry{key: name, local: map[string]any{}})
		}
		return out, nil
	case []map[string]any:
		var out []entry
		for _, m := range t {
			out = append(out, entriesFromMap(m)...)
		}
		return out, nil
	case []any:
		return entriesFromSlice(t)
	case nil:
		return nil, setShapeError(ruleSet)
	}

	// Uncommon slice types (e.g. []Rule makes no sense, but []Options does)
	// go through reflection once rather than growing the switch forever.
	rv := reflect.ValueOf(ruleSet)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		elems := make([]any, rv.Len())
		for i := range rv.Len() {
			elems[i] = rv.Index(i).Interface()
		}
		return entriesFromSlice(elems)
	}

	return nil, setShapeError(ruleSet)
}

func entriesFromSlice(elems []any) ([]entry, error) {
	var out []entry
	for _, elem := range elems {
		switch t := elem.(type) {
		case string:
			out = append(out, entry{key: t, local: map[string]any{}})
		case map[string]any:
			out = append(out, entriesFromMap(t)...)
		case Options:
			out = append(out, entriesFromMap(t)...)
		case map[string]string:
			for _, k := range slices.Sorted(maps.Keys(t)) {
				out = append(out, entry{key: k, local: t[k]})
			}
		default:
			return nil, setShapeError(elem)
		}
	}
	return out, nil
}

func entriesFromMap(m map[string]any) []entry {
	out := make([]entry, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, entry{key: k, local: m[k]})
	}
	return out
}

func setShapeError(v any) error {
	if v == nil {
		return fmt.Errorf("%w: validator value must be a single string, a single object or an array, got nil", ErrTypeConfig)
	}
	return fmt.Errorf("%w: validator value must be a single string, a single object or an array, got %T", ErrTypeConfig, v)
}
