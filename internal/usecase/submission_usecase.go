package usecase

import (
	"context"
	"fmt"
	"physiowell-web/internal/domain"
	"physiowell-web/pkg/logger"
	"physiowell-web/pkg/validation"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// contactRules are the required fields of a general enquiry.
type contactRules struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Message string `validate:"required"`
}

// appointmentRules are checked in field order; the first failure decides the
// message shown to the patient.
type appointmentRules struct {
	Name             string `validate:"required"`
	Email            string `validate:"required"`
	Condition        string `validate:"required"`
	ServiceType      string `validate:"required"`
	ConsultationType string `validate:"required"`
}

type submissionUsecase struct {
	mailer    domain.Mailer
	recipient string
	validate  *validator.Validate
	now       func() time.Time
}

type SubmissionOption func(*submissionUsecase)

// WithClock overrides the clock used for the "Submitted at" line.
func WithClock(now func() time.Time) SubmissionOption {
	return func(uc *submissionUsecase) {
		uc.now = now
	}
}

// NewSubmissionUsecase creates the contact/booking usecase. recipient is the
// practice mailbox; submitter addresses are never used as a recipient.
func NewSubmissionUsecase(mailer domain.Mailer, recipient string, validate *validator.Validate, opts ...SubmissionOption) domain.SubmissionUsecase {
	uc := &submissionUsecase{
		mailer:    mailer,
		recipient: recipient,
		validate:  validate,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Submit validates the form, formats the notification and dispatches it
func (uc *submissionUsecase) Submit(ctx context.Context, form *domain.SubmissionForm) (*domain.SubmissionResult, error) {
	sub, err := ParseSubmission(uc.validate, form)
	if err != nil {
		return nil, err
	}

	submittedAt := uc.now()
	msg, err := BuildMessage(sub, uc.recipient, submittedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to format submission: %w", err)
	}

	// Delivery problems stay in the logs; the patient still gets a confirmation.
	delivered := uc.mailer.Dispatch(ctx, msg.Subject, msg.Body, msg.Recipient)
	if delivered {
		if sub.IsAppointment() {
			logger.Log.Info("Appointment booking submitted",
				"name", sub.Name, "email", sub.Email, "consultation_type", sub.Appointment.ConsultationType)
		} else {
			logger.Log.Info("Contact form submitted", "name", sub.Name, "email", sub.Email)
		}
	}

	return &domain.SubmissionResult{
		Submission:  sub,
		Message:     msg,
		Delivered:   delivered,
		SubmittedAt: submittedAt,
	}, nil
}

// ParseSubmission trims the raw form, classifies it and checks the required
// fields for its kind. Failures are returned as *domain.ValidationError.
func ParseSubmission(validate *validator.Validate, form *domain.SubmissionForm) (*domain.Submission, error) {
	kind := form.Kind()
	sub := &domain.Submission{
		Kind:    kind,
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Phone:   strings.TrimSpace(form.Phone),
		Service: strings.TrimSpace(form.Service),
		Message: strings.TrimSpace(form.Message),
	}

	var rules any = contactRules{
		Name:    sub.Name,
		Email:   sub.Email,
		Message: sub.Message,
	}
	if kind == domain.KindAppointment {
		sub.Appointment = &domain.AppointmentDetails{
			ServiceType:      strings.TrimSpace(form.ServiceType),
			ConsultationType: strings.TrimSpace(form.ConsultationType),
			PreferredDate:    strings.TrimSpace(form.PreferredDate),
			PreferredTime:    strings.TrimSpace(form.PreferredTime),
			Urgency:          strings.TrimSpace(form.Urgency),
			Age:              strings.TrimSpace(form.Age),
			PainLevel:        strings.TrimSpace(form.PainLevel),
			Duration:         strings.TrimSpace(form.Duration),
			FirstTime:        form.FirstTime != "",
		}
		rules = appointmentRules{
			Name:             sub.Name,
			Email:            sub.Email,
			Condition:        sub.Message,
			ServiceType:      sub.Appointment.ServiceType,
			ConsultationType: sub.Appointment.ConsultationType,
		}
	}

	if err := validate.Struct(rules); err != nil {
		logger.Log.Debug("Submission rejected", "kind", kind, "fields", validation.FormatValidationErrors(err))
		return nil, &domain.ValidationError{
			Message: validation.FirstMessage(err, validation.RequiredFieldsMessage),
			Kind:    kind,
		}
	}

	return sub, nil
}
