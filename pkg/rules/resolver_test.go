package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

func failingRule(message string) rules.Rule {
	return rules.Rule{
		ErrorMessage: message,
		Validator:    func(any, rules.Options) bool { return false },
	}
}

func TestResolve_MessagePrecedence(t *testing.T) {
	t.Run("local inline message wins over registry message", func(t *testing.T) {
		reg := rules.NewRegistry()
		reg.Register("always", failingRule("registry message"))

		failure, err := reg.Evaluate("x", map[string]string{"always": "local message"}, nil)
		require.NoError(t, err)
		require.NotNil(t, failure)
		assert.Equal(t, "local message", failure.Message)
	})

	t.Run("registry message wins over engine default", func(t *testing.T) {
		reg := rules.NewRegistry()
		reg.Register("always", failingRule("registry message"))

		failure, err := reg.Evaluate("x", "always", nil)
		require.NoError(t, err)
		require.NotNil(t, failure)
		assert.Equal(t, "registry message", failure.Message)
	})

	t.Run("engine default is the last resort", func(t *testing.T) {
		reg := rules.NewRegistry()
		reg.Register("always", rules.Rule{
			Validator: func(any, rules.Options) bool { return false },
		})

		failure, err := reg.Evaluate("x", "always", nil)
		require.NoError(t, err)
		require.NotNil(t, failure)
		assert.Equal(t, rules.DefaultValidationErrorMessage, failure.Message)
	})

	t.Run("custom registry default message", func(t *testing.T) {
		reg := rules.NewRegistry()
		reg.SetDefaultMessage("Nope.")
		reg.Register("always", rules.Rule{
			Validator: func(any, rules.Options) bool { return false },
		})

		failure, err := reg.Evaluate("x", "always", nil)
		require.NoError(t, err)
		require.NotNil(t, failure)
		assert.Equal(t, "Nope.", failure.Message)
	})
}

func TestResolve_LocalOverrides(t *testing.T) {
	t.Run("local negate wins over registry negate", func(t *testing.T) {
		reg := rules.NewRegistry()
		reg.Register("truthy", rules.Rule{
			Negate:    true,
			Validator: func(any, rules.Options) bool { return true },
		})

		// The registry negation alone would fail a passing predicate.
		failure, err := reg.Evaluate("x", "truthy", nil)
		require.NoError(t, err)
		require.NotNil(t, failure)

		// A local negate:false restores the plain predicate result.
		ruleSet := map[string]any{"truthy": map[string]any{"negate": false}}
		failure, err = reg.Evaluate("x", ruleSet, nil)
		require.NoError(t, err)
		assert.Nil(t, failure)
	})

	t.Run("local validator function wins over registry validator", func(t *testing.T) {
		reg := rules.NewRegistry()
		reg.Register("check", failingRule("registry says no"))

		ruleSet := map[string]any{"check": map[string]any{
			"validator": func(any, rules.Options) bool { return true },
		}}
		failure, err := reg.Evaluate("x", ruleSet, nil)
		require.NoError(t, err)
		assert.Nil(t, failure)
	})

	t.Run("local options win over registry options", func(t *testing.T) {
		reg := rules.NewRegistry()
		reg.Register("minLen", rules.Rule{
			ErrorMessage: "too short",
			Options:      rules.Options{"min": 10},
			Validator: func(v any, opts rules.Options) bool {
				s, _ := v.(string)
				min, _ := opts["min"].(int)
				return len(s) >= min
			},
		})

		ruleSet := map[string]any{"minLen": map[string]any{
			"options": map[string]any{"min": 2},
		}}
		failure, err := reg.Evaluate("abc", ruleSet, nil)
		require.NoError(t, err)
		assert.Nil(t, failure)

		failure, err = reg.Evaluate("abc", "minLen", nil)
		require.NoError(t, err)
		assert.NotNil(t, failure)
	})

	t.Run("unknown string validator clears the predicate", func(t *testing.T) {
		reg := rules.NewRegistry()
		reg.Register("check", failingRule("registry says no"))

		ruleSet := map[string]any{"check": map[string]any{"validator": "noSuchCheck"}}
		_, err := reg.Evaluate("x", ruleSet, nil)
		assert.ErrorIs(t, err, rules.ErrMissingPredicate)
	})
}

func TestResolve_RegistryStringEntry(t *testing.T) {
	lib := stubLibrary{
		version: "12.0.0",
		predicates: map[string]rules.Predicate{
			"isEven": func(v any, _ rules.Options) bool {
				n, _ := v.(int)
				return n%2 == 0
			},
		},
	}
	installLibrary(t, lib)

	reg := rules.NewRegistry()
	reg.Register("isEven", "Must be even.")

	failure, err := reg.Evaluate(3, "isEven", nil)
	require.NoError(t, err)
	require.NotNil(t, failure)
	assert.Equal(t, "isEven", failure.RuleKey)
	assert.Equal(t, "Must be even.", failure.Message)

	failure, err = reg.Evaluate(4, "isEven", nil)
	require.NoError(t, err)
	assert.Nil(t, failure)
}

func TestResolve_StringValidatorReference(t *testing.T) {
	lib := stubLibrary{
		version: "12.0.0",
		predicates: map[string]rules.Predicate{
			"isUpper": func(v any, _ rules.Options) bool {
				s, _ := v.(string)
				return s != "" && s == upper(s)
			},
		},
	}
	installLibrary(t, lib)

	reg := rules.NewRegistry()
	ruleSet := map[string]any{"screaming": map[string]any{
		"validator":    "isUpper",
		"errorMessage": "Use capitals.",
	}}

	failure, err := reg.Evaluate("quiet", ruleSet, nil)
	require.NoError(t, err)
	require.NotNil(t, failure)
	assert.Equal(t, "screaming", failure.RuleKey)
	assert.Equal(t, "Use capitals.", failure.Message)

	failure, err = reg.Evaluate("LOUD", ruleSet, nil)
	require.NoError(t, err)
	assert.Nil(t, failure)
}

func upper(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 'a' + 'A'
		}
	}
	return string(out)
}

func TestResolve_InvalidShapes(t *testing.T) {
	t.Run("registry entry is nil", func(t *testing.T) {
		reg := rules.NewRegistry()
		reg.Register("broken", nil)

		_, err := reg.Evaluate("x", "broken", nil)
		assert.ErrorIs(t, err, rules.ErrTypeConfig)
	})

	t.Run("registry entry is an array", func(t *testing.T) {
		reg := rules.NewRegistry()
		reg.Register("broken", []string{"isRequired"})

		_, err := reg.Evaluate("x", "broken", nil)
		assert.ErrorIs(t, err, rules.ErrTypeConfig)
	})

	t.Run("registry entry is a number", func(t *testing.T) {
		reg := rules.NewRegistry()
		reg.Register("broken", 42)

		_, err := reg.Evaluate("x", "broken", nil)
		assert.ErrorIs(t, err, rules.ErrTypeConfig)
	})

	t.Run("validator is neither string nor function", func(t *testing.T) {
		reg := rules.NewRegistry()
		ruleSet := map[string]any{"broken": map[string]any{"validator": 42}}

		_, err := reg.Evaluate("x", ruleSet, nil)
		require.ErrorIs(t, err, rules.ErrWrongPredicateType)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("wrong errorMessage field type", func(t *testing.T) {
		reg := rules.NewRegistry()
		ruleSet := map[string]any{"broken": map[string]any{"errorMessage": 7}}

		_, err := reg.Evaluate("x", ruleSet, nil)
		assert.ErrorIs(t, err, rules.ErrTypeConfig)
	})
}
