// Package formkit coordinates whole-form validation for interactive user
// interfaces: named field values, declarative per-field rule sets, touched
// state, and submission gating, built on the rules engine in pkg/rules.
//
// A Form tracks a field through the states Untouched → Valid | Invalid. A
// field enters evaluation on its first blur or programmatic validation and is
// re-evaluated on every later value change while touched, which is the
// reactive behavior UIs expect. The evaluator itself reports only the first
// failing rule per field; the Form accumulates those single-field outcomes
// into a FieldErrors map across the whole form.
//
// Importing formkit wires the default predicate library (pkg/checks), so bare
// rule names like "isEmail" resolve out of the box:
//
//	form := formkit.New(
//		formkit.WithRules("email", []string{"isRequired", "isEmail"}),
//		formkit.WithRules("password", []any{
//			"isRequired",
//			map[string]any{"passwordLength": map[string]any{
//				"validator":    "isLength",
//				"errorMessage": "Use at least 8 characters.",
//				"options":      map[string]any{"min": 8},
//			}},
//		}),
//	)
//	form.SetValue("email", "user@example.com")
//	errs, err := form.Validate()
//
// The optional HTTP binding (Form.Handler) mounts validation endpoints on a
// chi router and pushes per-field error state over datastar server-sent
// events for reactive frontends.
package formkit
