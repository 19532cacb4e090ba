package validation_test

import (
	"errors"
	"testing"

	"physiowell-web/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type bookingRules struct {
	Name             string `validate:"required"`
	Condition        string `validate:"required"`
	ServiceType      string `validate:"required"`
	ConsultationType string `validate:"required"`
}

func TestFirstMessage(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name  string
		input bookingRules
		want  string
	}{
		{
			name:  "generic field falls back",
			input: bookingRules{Condition: "x", ServiceType: "x", ConsultationType: "x"},
			want:  validation.RequiredFieldsMessage,
		},
		{
			name:  "first failing field wins",
			input: bookingRules{Name: "Jane"},
			want:  "Please describe your condition or symptoms.",
		},
		{
			name:  "service type",
			input: bookingRules{Name: "Jane", Condition: "x", ConsultationType: "Video"},
			want:  "Please select a service type.",
		},
		{
			name:  "consultation type",
			input: bookingRules{Name: "Jane", Condition: "x", ServiceType: "Back Pain"},
			want:  "Please select a consultation type (In-Person or Video).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			assert.Equal(t, tt.want, validation.FirstMessage(err, validation.RequiredFieldsMessage))
		})
	}
}

func TestFirstMessageNonValidationError(t *testing.T) {
	assert.Equal(t, "fallback", validation.FirstMessage(errors.New("boom"), "fallback"))
}

func TestFormatValidationErrors(t *testing.T) {
	err := validator.New().Struct(bookingRules{})

	msgs := validation.FormatValidationErrors(err)

	assert.Equal(t, []string{
		"Name: required",
		"Condition or symptoms: required",
		"Service type: required",
		"Consultation type: required",
	}, msgs)
}
