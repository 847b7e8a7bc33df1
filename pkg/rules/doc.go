// Package rules implements the rule-resolution and validation-evaluation
// engine behind formkit: it turns mixed-shape rule specifications into
// executable predicates and evaluates them against field values.
//
// A rule set for a single field is an ordered sequence of entries, each of
// which is one of:
//   - a bare name ("isEmail") referring to a rule in the registry or the
//     pluggable predicate library,
//   - a key→message map ({"isEmail": "Invalid email."}) overriding the
//     error message of a named rule,
//   - a key→config map ({"isEmail": {"negate": true, "options": {...}}})
//     overriding message, negation, options, or the predicate itself.
//
// Rules are evaluated strictly in order and evaluation stops at the first
// failing rule; only that rule's key and message are ever reported.
//
// # Registry
//
// A Registry holds reusable named rules shared by every field of the
// embedding application. Registry values may be a plain message string
// (implying a predicate of the same name from the predicate library) or a
// full Rule config. The registry is shared mutable state: it guards its own
// map, but callers are expected to serialize registration relative to
// in-flight validations — there is no snapshot consistency across a single
// evaluation.
//
// # Predicate library
//
// Predicates referenced by name are looked up in a pluggable library that is
// lazily loaded on first use. The load is single-flight and its outcome is
// memoized for the process lifetime, except that a library rejected for an
// unsupported version is not cached as loaded so a corrected loader can be
// registered later. Libraries below major version 11 are rejected.
//
// # Error handling
//
// Malformed rule shapes, unresolvable predicates, and unsupported library
// versions are configuration errors returned as Go errors wrapping the
// package sentinels (ErrTypeConfig, ErrMissingPredicate, and so on). A field
// failing validation is not an error: Evaluate reports it as a *Failure
// regular return value, nil meaning valid.
package rules
