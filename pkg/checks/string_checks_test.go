package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/checks"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"empty string", "", true},
		{"whitespace only", "  \t\n", true},
		{"non-empty", "a", false},
		{"non-string", 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checks.IsEmpty(tt.value, nil))
		})
	}
}

func TestContains(t *testing.T) {
	opts := rules.Options{"seed": "needle"}

	assert.True(t, checks.Contains("hay needle stack", opts))
	assert.False(t, checks.Contains("haystack", opts))
	assert.False(t, checks.Contains("needle", rules.Options{}))
	assert.False(t, checks.Contains(42, opts))
}

func TestEquals(t *testing.T) {
	assert.True(t, checks.Equals("yes", rules.Options{"comparison": "yes"}))
	assert.False(t, checks.Equals("no", rules.Options{"comparison": "yes"}))
	assert.True(t, checks.Equals(7, rules.Options{"comparison": 7}))
}

func TestEqualsField(t *testing.T) {
	formData := map[string]any{"password": "s3cret"}
	opts := rules.Options{
		"field":          "password",
		rules.FormDataKey: formData,
	}

	assert.True(t, checks.EqualsField("s3cret", opts))
	assert.False(t, checks.EqualsField("other", opts))
	assert.False(t, checks.EqualsField("s3cret", rules.Options{rules.FormDataKey: formData}))
}

func TestMatches(t *testing.T) {
	opts := rules.Options{"pattern": `^[a-z]+-\d+$`}

	assert.True(t, checks.Matches("abc-123", opts))
	assert.False(t, checks.Matches("ABC-123", opts))
	assert.False(t, checks.Matches("abc-123", rules.Options{}))
	assert.False(t, checks.Matches("abc-123", rules.Options{"pattern": "("}))
}

func TestIsIn(t *testing.T) {
	assert.True(t, checks.IsIn("b", rules.Options{"values": []string{"a", "b"}}))
	assert.False(t, checks.IsIn("c", rules.Options{"values": []string{"a", "b"}}))
	assert.True(t, checks.IsIn(2, rules.Options{"values": []any{1, 2}}))
	assert.False(t, checks.IsIn("a", rules.Options{}))
}

func TestIsLength(t *testing.T) {
	tests := []struct {
		name  string
		value any
		opts  rules.Options
		want  bool
	}{
		{"within bounds", "abc", rules.Options{"min": 2, "max": 4}, true},
		{"below min", "a", rules.Options{"min": 2}, false},
		{"above max", "abcde", rules.Options{"max": 4}, false},
		{"no bounds", "anything", rules.Options{}, true},
		{"runes not bytes", "héllo", rules.Options{"max": 5}, true},
		{"non-string", 42, rules.Options{"min": 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checks.IsLength(tt.value, tt.opts))
		})
	}
}

func TestIsByteLength(t *testing.T) {
	// "héllo" is 6 bytes but 5 runes.
	assert.False(t, checks.IsByteLength("héllo", rules.Options{"max": 5}))
	assert.True(t, checks.IsByteLength("hello", rules.Options{"max": 5}))
}

func TestCaseChecks(t *testing.T) {
	assert.True(t, checks.IsLowercase("abc 123", nil))
	assert.False(t, checks.IsLowercase("Abc", nil))
	assert.True(t, checks.IsUppercase("ABC 123", nil))
	assert.False(t, checks.IsUppercase("aBC", nil))
}
