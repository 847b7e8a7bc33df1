package rules

// FormDataKey is the options key under which every predicate receives a
// snapshot of the complete current form values, enabling cross-field rules.
const FormDataKey = "formData"

// Options is the open key/value bag passed to every predicate invocation.
// After resolution it always contains FormDataKey.
type Options map[string]any

// FormData returns the form-values snapshot injected by the engine.
func (o Options) FormData() map[string]any {
	fd, _ := o[FormDataKey].(map[string]any)
	return fd
}

// withFormData returns a copy of o guaranteed to carry the form-data snapshot.
// The caller's map is never mutated.
func (o Options) withFormData(formData map[string]any) Options {
	out := make(Options, len(o)+1)
	for k, v := range o {
		out[k] = v
	}
	if _, ok := out[FormDataKey]; !ok {
		if formData == nil {
			formData = map[string]any{}
		}
		out[FormDataKey] = formData
	}
	return out
}
