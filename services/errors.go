package services

import (
	"portfolio-backend/utils"
)

// ValidationErrors carries the per-field messages of a rejected input.
type ValidationErrors struct {
	Fields []utils.FieldError
}

func (e *ValidationErrors) Error() string {
	if len(e.Fields) == 1 {
		return "invalid input: " + e.Fields[0].Message
	}
	return "invalid input"
}

// NewValidationError builds a single-field validation failure.
func NewValidationError(field, message string) *ValidationErrors {
	return &ValidationErrors{Fields: []utils.FieldError{{Field: field, Message: message}}}
}
