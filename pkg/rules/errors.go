package rules

import "errors"

// Configuration errors reported by the engine. All of them indicate developer
// misconfiguration rather than invalid user input; a field failing validation
// is a regular *Failure return value, never an error.
var (
	// ErrTypeConfig indicates a rule specification, registry entry, or rule-set
	// argument has an unsupported shape (nil, array where an object or string
	// was expected, wrong primitive type).
	ErrTypeConfig = errors.New("invalid rule configuration type")

	// ErrMissingPredicate indicates a rule key has no resolvable predicate: it
	// is not in the registry, not a known predicate-library name, and no
	// literal function was given.
	ErrMissingPredicate = errors.New("missing validation predicate")

	// ErrWrongPredicateType indicates a validator field resolved to something
	// that is neither a string reference nor a predicate function.
	ErrWrongPredicateType = errors.New("wrong predicate type")

	// ErrUnsupportedLibraryVersion indicates the pluggable predicate library is
	// present but below the minimum supported major version.
	ErrUnsupportedLibraryVersion = errors.New("unsupported predicate library version")
)
