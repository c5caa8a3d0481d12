package assessment

import (
	"fmt"
	"strings"
)

// MinFeedbackLength is the minimum trimmed length of interview feedback.
const MinFeedbackLength = 20

// FieldError describes one invalid request field.
type FieldError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// ValidationError is returned when a request fails local validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Issue))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
