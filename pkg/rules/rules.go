package rules

// RequiredKey is the one reserved rule key with intrinsic semantics: a value
// is invalid when it is empty (nil, false, numeric zero, or a blank string
// after trimming). Any validator configured for this key is ignored.
const RequiredKey = "isRequired"

// DefaultValidationErrorMessage is reported for a failing rule that carries no
// message of its own, neither inline nor in the registry.
const DefaultValidationErrorMessage = "This field is not valid."

// Predicate checks a single field value. Options always carries the complete
// form values under FormDataKey so cross-field checks stay expressible.
type Predicate func(value any, opts Options) bool

// Rule is the typed config form of a rule-set entry or registry value. The
// map forms accepted by Evaluate and Registry.Register carry the same fields
// under the keys "errorMessage", "negate", "options", and "validator".
//
// Zero fields are treated as unset and fall through to the registry entry or
// the engine defaults. To explicitly clear a registry-level negation, use the
// map form, which distinguishes an absent key from a false value.
type Rule struct {
	ErrorMessage string
	Negate       bool
	Options      Options

	// Validator is either a Predicate (or plain func(any, Options) bool), or
	// the string name of a predicate in the pluggable library.
	Validator any
}

// Config is a fully resolved rule: local overrides merged over the registry
// entry merged over defaults, with the predicate reduced to a callable.
type Config struct {
	Key          string
	ErrorMessage string
	Negate       bool
	Options      Options
	Predicate    Predicate
}

// Failure identifies the first rule a value did not satisfy.
type Failure struct {
	RuleKey string
	Message string
}
