package handler

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/devsomeware/contactkit/pkg/validator"
)

// ValidationError represents field validation errors keyed by field name.
type ValidationError url.Values

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

// NewValidationError creates an empty validation error.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Add adds an error message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Has checks if a field has any errors.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// FromValidator converts validator rule failures into a ValidationError.
func FromValidator(errs validator.ValidationErrors) ValidationError {
	out := NewValidationError()
	for _, err := range errs {
		out.Add(err.Field, err.Message)
	}
	return out
}
