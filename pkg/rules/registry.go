package rules

import "sync"

// Registry holds reusable named rules shared by every field of the embedding
// application. Values are either a plain error-message string, implying a
// predicate of the same name from the pluggable library, or a full config
// (Rule or its map form). Shapes are checked at resolution time, so a bad
// registration surfaces on the first validation that references it.
//
// The registry guards its own map, but offers no snapshot consistency across
// an in-flight evaluation; the embedding application is expected to register
// rules at startup or otherwise serialize writes relative to validations.
type Registry struct {
	mu             sync.RWMutex
	rules          map[string]any
	defaultMessage string
}

// NewRegistry returns an empty registry using DefaultValidationErrorMessage
// for rules without a message of their own.
func NewRegistry() *Registry {
	return &Registry{
		rules:          make(map[string]any),
		defaultMessage: DefaultValidationErrorMessage,
	}
}

// Register stores a reusable rule under key. The value may be an
// error-message string, a Rule, or a config map; anything else fails with
// ErrTypeConfig on first resolution, not here.
func (r *Registry) Register(key string, rule any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[key] = rule
}

// Unregister removes a rule. Removing an unknown key is a no-op.
func (r *Registry) Unregister(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rules, key)
}

// Has reports whether a rule is registered under key.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rules[key]
	return ok
}

// SetDefaultMessage replaces the message used for failing rules that carry no
// message of their own.
func (r *Registry) SetDefaultMessage(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if msg != "" {
		r.defaultMessage = msg
	}
}

func (r *Registry) lookup(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.rules[key]
	return v, ok
}

func (r *Registry) fallbackMessage() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultMessage
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry, pre-seeded with the intrinsic
// isRequired rule. Most embeddings share this one; construct a separate
// Registry to isolate rule sets, e.g. per tenant or per test.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		defaultRegistry.Register(RequiredKey, "This field is required.")
	})
	return defaultRegistry
}

// Register stores a reusable rule in the Default registry.
func Register(key string, rule any) {
	Default().Register(key, rule)
}
