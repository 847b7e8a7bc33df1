package rules

import (
	"fmt"
	"reflect"
)

// Rule values arrive in mixed shapes (bare strings, message overrides, config
// maps, typed Rule structs). Each value is classified exactly once at the
// boundary into one of these shapes; resolution never re-inspects raw types.
type shape int

const (
	shapeInvalid shape = iota
	shapeMessage       // plain string: an error-message override
	shapeConfig        // object form: message/negate/options/validator fields
)

// ruleFields is the canonical decoded form of a message-or-config value.
// Pointer fields record presence so a local override only replaces what it
// actually sets.
type ruleFields struct {
	shape        shape
	message      string // shapeMessage only
	errorMessage *string
	negate       *bool
	options      Options
	validator    any // string name, Predicate, or func(any, Options) bool
}

// isEmpty reports whether a config-shaped value set no fields at all, which
// is how a bare rule name looks after normalization.
func (f ruleFields) isEmpty() bool {
	return f.shape == shapeConfig &&
		f.errorMessage == nil && f.negate == nil && f.options == nil && f.validator == nil
}

// classify decodes one rule value into ruleFields. It fails with ErrTypeConfig
// for nil values, arrays, and unsupported primitives: rule shapes are never
// guessed.
func classify(key string, v any) (ruleFields, error) {
	switch t := v.(type) {
	case nil:
		return ruleFields{}, fmt.Errorf("%w: rule %q must be of string or object type, got nil", ErrTypeConfig, key)
	case string:
		return ruleFields{shape: shapeMessage, message: t}, nil
	case Rule:
		return classifyRule(t), nil
	case *Rule:
		if t == nil {
			return ruleFields{}, fmt.Errorf("%w: rule %q must be of string or object type, got nil", ErrTypeConfig, key)
		}
		return classifyRule(*t), nil
	case Options:
		return classifyMap(key, t)
	case map[string]any:
		return classifyMap(key, t)
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = val
		}
		return classifyMap(key, m)
	}

	if k := reflect.TypeOf(v).Kind(); k == reflect.Slice || k == reflect.Array {
		return ruleFields{}, fmt.Errorf("%w: rule %q must be of string or object type, got array", ErrTypeConfig, key)
	}
	return ruleFields{}, fmt.Errorf("%w: rule %q must be of string or object type, got %T", ErrTypeConfig, key, v)
}

func classifyRule(r Rule) ruleFields {
	f := ruleFields{shape: shapeConfig, validator: r.Validator}
	if r.ErrorMessage != "" {
		msg := r.ErrorMessage
		f.errorMessage = &msg
	}
	if r.Negate {
		neg := true
		f.negate = &neg
	}
	if r.Options != nil {
		f.options = r.Options
	}
	return f
}

func classifyMap(key string, m map[string]any) (ruleFields, error) {
	f := ruleFields{shape: shapeConfig}

	if raw, ok := m["errorMessage"]; ok {
		msg, ok := raw.(string)
		if !ok {
			return ruleFields{}, fmt.Errorf("%w: rule %q errorMessage must be a string, got %T", ErrTypeConfig, key, raw)
		}
		f.errorMessage = &msg
	}
	if raw, ok := m["negate"]; ok {
		neg, ok := raw.(bool)
		if !ok {
			return ruleFields{}, fmt.Errorf("%w: rule %q negate must be a bool, got %T", ErrTypeConfig, key, raw)
		}
		f.negate = &neg
	}
	if raw, ok := m["options"]; ok {
		switch opts := raw.(type) {
		case nil:
			// Explicit null options behave like absent options: the engine
			// still injects the form-data snapshot.
		case Options:
			f.options = opts
		case map[string]any:
			f.options = Options(opts)
		default:
			return ruleFields{}, fmt.Errorf("%w: rule %q options must be an object, got %T", ErrTypeConfig, key, raw)
		}
	}
	if raw, ok := m["validator"]; ok {
		f.validator = raw
	}

	return f, nil
}
