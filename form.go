package formkit

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/rules"
	"github.com/dmitrymomot/formkit/pkg/schema"

	// Wires the default predicate library so bare rule names resolve.
	_ "github.com/dmitrymomot/formkit/pkg/checks"
)

// State describes a field from the UI's perspective.
type State int

const (
	// StateUntouched means the field has never been validated; UIs show no
	// error for it regardless of its value.
	StateUntouched State = iota
	// StateValid means the field passed its rule set on the last evaluation.
	StateValid
	// StateInvalid means the field failed a rule on the last evaluation.
	StateInvalid
)

// Form tracks the values, rule sets, and validation state of one form
// instance. All methods are safe for concurrent use.
type Form struct {
	mu       sync.Mutex
	id       string
	registry *rules.Registry
	values   map[string]any
	ruleSets map[string]any
	touched  map[string]bool
	errs     FieldErrors
	logger   *slog.Logger
}

// Option configures a Form during construction.
type Option func(*Form)

// WithRegistry makes the form resolve rules against reg instead of the
// process-wide default registry.
func WithRegistry(reg *rules.Registry) Option {
	return func(f *Form) {
		if reg != nil {
			f.registry = reg
		}
	}
}

// WithLogger enables debug logging of validation runs.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithRules attaches a rule set to a field. The rule set accepts every shape
// rules.Evaluate does: a bare name, a key→config map, or a slice of either.
func WithRules(field string, ruleSet any) Option {
	return func(f *Form) {
		f.ruleSets[field] = ruleSet
	}
}

// WithValues seeds the initial field values.
func WithValues(values map[string]any) Option {
	return func(f *Form) {
		maps.Copy(f.values, values)
	}
}

// WithSchema attaches every field rule set from a parsed schema document and
// registers the document's reusable rules into the form's registry. Combine
// with WithRegistry to keep document rules out of the process-wide registry;
// schema rules are applied after all other options.
func WithSchema(doc *schema.Form) Option {
	return func(f *Form) {
		if doc == nil {
			return
		}
		for field, ruleSet := range doc.Fields {
			f.ruleSets[field] = ruleSet
		}
		doc.Apply(f.registry)
	}
}

// New creates a form. Without options it has no fields and resolves rules
// against rules.Default().
func New(opts ...Option) *Form {
	f := &Form{
		id:       uuid.NewString(),
		registry: rules.Default(),
		values:   make(map[string]any),
		ruleSets: make(map[string]any),
		touched:  make(map[string]bool),
		errs:     NewFieldErrors(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	// Options apply in order: pass WithRegistry before WithSchema so the
	// document's rules land in the right registry.
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ID returns the form's unique instance identifier.
func (f *Form) ID() string { return f.id }

// SetRules attaches or replaces a field's rule set. If the field is already
// touched it is re-validated against the new rules immediately.
func (f *Form) SetRules(field string, ruleSet any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ruleSets[field] = ruleSet
	if f.touched[field] {
		_, err := f.validateFieldLocked(field)
		return err
	}
	return nil
}

// SetValue updates a field value. A touched field is re-validated against the
// new value, which is the re-entry transition of the field state machine; an
// untouched field stays untouched.
func (f *Form) SetValue(field string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[field] = value
	if f.touched[field] {
		_, err := f.validateFieldLocked(field)
		return err
	}
	return nil
}

// Value returns a field's current value.
func (f *Form) Value(field string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

// Values returns a snapshot copy of all current field values.
func (f *Form) Values() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Touch marks a field as touched and validates it, the blur-equivalent
// transition out of StateUntouched.
func (f *Form) Touch(field string) (*rules.Failure, error) {
	return f.ValidateField(field)
}

// ValidateField evaluates one field's rule set against its current value,
// marking the field touched. A nil Failure means the field is valid; a
// non-nil error means the rule set itself is misconfigured.
func (f *Form) ValidateField(field string) (*rules.Failure, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateFieldLocked(field)
}

// Validate evaluates every rule-bearing field, marking all of them touched.
// The returned FieldErrors carries the first failing rule's message per
// invalid field; an empty collection means the form is valid.
func (f *Form) Validate() (FieldErrors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, field := range slices.Sorted(maps.Keys(f.ruleSets)) {
		if _, err := f.validateFieldLocked(field); err != nil {
			return nil, err
		}
	}
	return f.errorsLocked(), nil
}

// Errors returns a copy of the current per-field error state. Only touched
// fields ever appear in it.
func (f *Form) Errors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorsLocked()
}

// FieldState reports where a field is in the Untouched → Valid | Invalid
// state machine.
func (f *Form) FieldState(field string) State {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.touched[field] {
		return StateUntouched
	}
	if f.errs.Has(field) {
		return StateInvalid
	}
	return StateValid
}

// FieldError returns the message a UI should show next to a field, or "".
func (f *Form) FieldError(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs.Get(field)
}

// Valid reports whether no touched field currently has an error. It does not
// trigger evaluation; call Validate for the submission-gating check.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs.IsEmpty()
}

// Reset returns every field to StateUntouched without changing values.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = make(map[string]bool)
	f.errs = NewFieldErrors()
}

func (f *Form) validateFieldLocked(field string) (*rules.Failure, error) {
	f.touched[field] = true

	ruleSet, ok := f.ruleSets[field]
	if !ok {
		// No rules means the field cannot fail.
		f.errs.Clear(field)
		return nil, nil
	}

	failure, err := f.registry.Evaluate(f.values[field], ruleSet, f.snapshotLocked())
	if err != nil {
		f.logger.Error("rule set misconfigured", "form_id", f.id, "field", field, "error", err)
		return nil, err
	}

	if failure != nil {
		f.errs.Set(field, failure.Message)
		f.logger.Debug("field invalid", "form_id", f.id, "field", field, "rule", failure.RuleKey)
	} else {
		f.errs.Clear(field)
		f.logger.Debug("field valid", "form_id", f.id, "field", field)
	}
	return failure, nil
}

func (f *Form) snapshotLocked() map[string]any {
	out := make(map[string]any, len(f.values))
	maps.Copy(out, f.values)
	return out
}

func (f *Form) errorsLocked() FieldErrors {
	out := NewFieldErrors()
	for field, messages := range f.errs {
		for _, msg := range messages {
			out.Add(field, msg)
		}
	}
	return out
}
