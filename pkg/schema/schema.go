// Package schema loads declarative form definitions from YAML documents and
// turns them into rule sets consumable by the formkit rules engine.
//
// A document names the form, optionally seeds reusable rules, and lists the
// rule set of every field in evaluation order:
//
//	name: signup
//	rules:
//	  isEmail: "Enter a valid email address."
//	fields:
//	  email:
//	    - isRequired
//	    - isEmail
//	  password:
//	    - isRequired
//	    - passwordLength:
//	        validator: isLength
//	        errorMessage: "Use at least 8 characters."
//	        options: {min: 8}
//
// Rule entries use exactly the shapes the engine accepts: a bare name, a
// key→message map, or a key→config map. Deeper shape problems (bad field
// types inside a config) surface at evaluation time as rules.ErrTypeConfig.
package schema

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

var (
	// ErrInvalidDocument indicates the YAML document does not describe a form.
	ErrInvalidDocument = errors.New("invalid form schema document")

	// ErrFailedToParse indicates the document is not valid YAML.
	ErrFailedToParse = errors.New("failed to parse form schema")
)

// RuleSet is one field's ordered rule entries, ready for the evaluator.
type RuleSet []any

// Form is a parsed form definition.
type Form struct {
	Name   string             `yaml:"name"`
	Rules  map[string]any     `yaml:"rules"`
	Fields map[string]RuleSet `yaml:"fields"`
}

// Parse reads and validates a YAML form definition.
func Parse(r io.Reader) (*Form, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParse, err)
	}
	return ParseBytes(content)
}

// ParseBytes parses a YAML form definition from memory.
func ParseBytes(content []byte) (*Form, error) {
	var form Form
	if err := yaml.Unmarshal(content, &form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParse, err)
	}

	if len(form.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields defined", ErrInvalidDocument)
	}

	for field, ruleSet := range form.Fields {
		for i, entry := range ruleSet {
			switch entry.(type) {
			case string, map[string]any:
			default:
				return nil, fmt.Errorf("%w: field %q rule %d must be a rule name or a key to config map, got %T",
					ErrInvalidDocument, field, i, entry)
			}
		}
	}

	return &form, nil
}

// RuleSet returns the rule set defined for a field.
func (f *Form) RuleSet(field string) (RuleSet, bool) {
	rs, ok := f.Fields[field]
	return rs, ok
}

// Apply registers the document's reusable rules into a registry. Values keep
// their document shape (message string or config map); the engine checks them
// on first resolution.
func (f *Form) Apply(reg *rules.Registry) {
	for key, rule := range f.Rules {
		reg.Register(key, rule)
	}
}
