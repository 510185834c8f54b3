// Package validate implements a small, pure field validator: a schema is a
// list of rules, each naming a field and a predicate, and validation returns
// the full list of failed fields rather than stopping at the first.
package validate

import "strings"

// FieldError describes a single failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule checks one field of the input.
type Rule struct {
	Field   string
	Message string
	Valid   func(value string) bool
}

// Schema is an ordered list of rules applied to a field/value map.
type Schema struct {
	rules []Rule
}

// NewSchema builds a schema from the given rules.
func NewSchema(rules ...Rule) *Schema {
	return &Schema{rules: rules}
}

// Validate applies every rule and returns all failures. A nil return means
// the input is valid. Validation never mutates the input.
func (s *Schema) Validate(values map[string]string) []FieldError {
	var errs []FieldError
	for _, r := range s.rules {
		if !r.Valid(values[r.Field]) {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}

// Required builds a rule rejecting values that are empty after trimming.
// The message mirrors the original form labels, e.g. "Title is required".
func Required(field, label string) Rule {
	return Rule{
		Field:   field,
		Message: label + " is required",
		Valid: func(value string) bool {
			return strings.TrimSpace(value) != ""
		},
	}
}
