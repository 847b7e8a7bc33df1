package rules

import "fmt"

// resolve turns one rule-set entry into a fully merged Config. Three concerns
// (predicate, error message, options) are each settled independently with the
// same precedence: local inline config wins over the registry entry, which
// wins over engine defaults.
func (r *Registry) resolve(key string, local any, formData map[string]any) (Config, error) {
	localFields, err := classify(key, local)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Key: key, ErrorMessage: r.fallbackMessage()}

	if global, ok := r.lookup(key); ok {
		globalFields, err := classify(key, global)
		if err != nil {
			return Config{}, err
		}
		switch globalFields.shape {
		case shapeMessage:
			// Plain-string registration implies a library predicate of the
			// same name.
			cfg.ErrorMessage = globalFields.message
			if key != RequiredKey {
				p, err := lookupPredicate(key)
				if err != nil {
					return Config{}, err
				}
				cfg.Predicate = p
			}
		case shapeConfig:
			if globalFields.errorMessage != nil {
				cfg.ErrorMessage = *globalFields.errorMessage
			}
			if globalFields.negate != nil {
				cfg.Negate = *globalFields.negate
			}
			if globalFields.options != nil {
				cfg.Options = globalFields.options
			}
			if globalFields.validator != nil {
				p, err := resolveValidator(key, globalFields.validator)
				if err != nil {
					return Config{}, err
				}
				cfg.Predicate = p
			}
		}
	} else if localFields.isEmpty() && key != RequiredKey {
		// A purely local rule given as a bare name: the key itself names a
		// library predicate.
		p, err := lookupPredicate(key)
		if err != nil {
			return Config{}, err
		}
		cfg.Predicate = p
	}

	// Local override merge: fields present in the entry win over the base
	// established above. A string validator has already been resolved by this
	// point and is never left stringly-typed; an unknown name deliberately
	// clears the predicate so the failure surfaces as ErrMissingPredicate.
	switch localFields.shape {
	case shapeMessage:
		cfg.ErrorMessage = localFields.message
	case shapeConfig:
		if localFields.errorMessage != nil {
			cfg.ErrorMessage = *localFields.errorMessage
		}
		if localFields.negate != nil {
			cfg.Negate = *localFields.negate
		}
		if localFields.options != nil {
			cfg.Options = localFields.options
		}
		if localFields.validator != nil {
			p, err := resolveValidator(key, localFields.validator)
			if err != nil {
				return Config{}, err
			}
			cfg.Predicate = p
		}
	}

	cfg.Options = cfg.Options.withFormData(formData)
	return cfg, nil
}

// resolveValidator reduces a validator field to a callable. String references
// go through the pluggable library; the reserved isRequired key ignores its
// validator entirely, so no lookup is triggered for it.
func resolveValidator(key string, v any) (Predicate, error) {
	switch p := v.(type) {
	case string:
		if key == RequiredKey {
			return nil, nil
		}
		return lookupPredicate(p)
	case Predicate:
		return p, nil
	case func(any, Options) bool:
		return Predicate(p), nil
	default:
		return nil, fmt.Errorf("%w: rule %q validator must be a string or a predicate function, got %T",
			ErrWrongPredicateType, key, v)
	}
}
