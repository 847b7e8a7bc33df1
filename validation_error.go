package formkit

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// FieldErrors maps field names to their validation messages. It is based on
// url.Values to leverage built-in string slice handling: each field keeps its
// messages in order of discovery, the first one being what a UI shows next to
// the field.
type FieldErrors url.Values

// NewFieldErrors creates an empty error collection.
func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

// Error implements the error interface with a developer-readable summary.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Get(field)))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add appends an error message for a field.
func (e FieldErrors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Set replaces all messages for a field with a single one.
func (e FieldErrors) Set(field, message string) {
	url.Values(e).Set(field, message)
}

// Clear drops all messages for a field, marking it valid again.
func (e FieldErrors) Clear(field string) {
	url.Values(e).Del(field)
}

// Get returns the first error message for a field, or "".
func (e FieldErrors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has reports whether a field has any errors.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// Fields returns the sorted names of all invalid fields.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// IsEmpty reports whether the collection carries no errors at all.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}

// Messages flattens the collection into field→first-message pairs, the shape
// pushed to reactive frontends as signals.
func (e FieldErrors) Messages() map[string]string {
	out := make(map[string]string, len(e))
	for _, field := range e.Fields() {
		out[field] = e.Get(field)
	}
	return out
}
