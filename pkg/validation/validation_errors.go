package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequiredFieldsMessage is shown whenever a field without its own message is missing.
const RequiredFieldsMessage = "Please fill in all required fields."

// FieldMessages maps rule-struct field names to the message shown when that
// field fails validation. Fields not listed fall back to RequiredFieldsMessage.
var FieldMessages = map[string]string{
	"Condition":        "Please describe your condition or symptoms.",
	"ServiceType":      "Please select a service type.",
	"ConsultationType": "Please select a consultation type (In-Person or Video).",
}

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Name":             "Name",
	"Email":            "Email",
	"Message":          "Message",
	"Condition":        "Condition or symptoms",
	"ServiceType":      "Service type",
	"ConsultationType": "Consultation type",
}

// FirstMessage returns the user message for the first failing field, in
// struct field order. Non-validation errors yield fallback.
func FirstMessage(err error, fallback string) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fallback
	}
	if msg, ok := FieldMessages[validationErrors[0].Field()]; ok {
		return msg
	}
	return fallback
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", label)
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
