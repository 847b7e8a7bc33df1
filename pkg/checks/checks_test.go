package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/checks"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

func TestLibrary_Version(t *testing.T) {
	assert.Equal(t, checks.Version, checks.Default().Version())
}

func TestLibrary_Lookup(t *testing.T) {
	lib := checks.Default()

	for _, name := range []string{"isEmail", "isEmpty", "isLength", "equalsField", "isUUID"} {
		p, ok := lib.Predicate(name)
		assert.True(t, ok, "expected predicate %q", name)
		assert.NotNil(t, p)
	}

	_, ok := lib.Predicate("noSuchCheck")
	assert.False(t, ok)
}

// Importing the package registers it as the engine's library loader, making
// bare rule names resolve end to end.
func TestLibrary_EngineIntegration(t *testing.T) {
	reg := rules.NewRegistry()
	reg.Register("isEmail", "Must be a valid email.")

	failure, err := reg.Evaluate("not-an-email", map[string]string{"isEmail": "Invalid email."}, nil)
	require.NoError(t, err)
	require.NotNil(t, failure)
	assert.Equal(t, "isEmail", failure.RuleKey)
	assert.Equal(t, "Invalid email.", failure.Message)

	failure, err = reg.Evaluate("user@example.com", "isEmail", nil)
	require.NoError(t, err)
	assert.Nil(t, failure)
}

func TestLibrary_CrossFieldIntegration(t *testing.T) {
	reg := rules.NewRegistry()
	formData := map[string]any{"password": "hunter2", "confirm": "hunter2"}

	ruleSet := map[string]any{"confirmMatches": map[string]any{
		"validator":    "equalsField",
		"errorMessage": "Passwords do not match.",
		"options":      map[string]any{"field": "password"},
	}}

	failure, err := reg.Evaluate("hunter2", ruleSet, formData)
	require.NoError(t, err)
	assert.Nil(t, failure)

	failure, err = reg.Evaluate("different", ruleSet, formData)
	require.NoError(t, err)
	require.NotNil(t, failure)
	assert.Equal(t, "Passwords do not match.", failure.Message)
}
