package usecase

import (
	"bytes"
	"fmt"
	"physiowell-web/internal/domain"
	"text/template"
	"time"
)

// TimestampLayout is the "Submitted at" format (local time).
const TimestampLayout = "2006-01-02 15:04:05"

const (
	PlaceholderNotSpecified = "Not specified"
	PlaceholderFlexible     = "Flexible"
	PlaceholderRoutine      = "Routine"
)

var contactBodyTemplate = template.Must(template.New("contact").Parse(`New contact form submission:

Name: {{.Name}}
Email: {{.Email}}
Phone: {{or .Phone .NotSpecified}}
Service Interest: {{or .Service .NotSpecified}}
Message: {{.Message}}

Submitted at: {{.SubmittedAt}}
`))

var appointmentBodyTemplate = template.Must(template.New("appointment").Parse(`NEW APPOINTMENT BOOKING:

PERSONAL INFORMATION:
Name: {{.Name}}
Email: {{.Email}}
Phone: {{or .Phone .NotSpecified}}
Age: {{or .Appointment.Age .NotSpecified}}

APPOINTMENT DETAILS:
Service Type: {{.Appointment.ServiceType}}
Consultation Type: {{.Appointment.ConsultationType}}
Preferred Date: {{or .Appointment.PreferredDate .Flexible}}
Preferred Time: {{or .Appointment.PreferredTime .Flexible}}
Urgency: {{or .Appointment.Urgency .Routine}}

MEDICAL INFORMATION:
Primary Condition: {{.Message}}
Pain Level (1-10): {{or .Appointment.PainLevel .NotSpecified}}
Duration: {{or .Appointment.Duration .NotSpecified}}
First time seeking physiotherapy: {{if .Appointment.FirstTime}}Yes{{else}}No{{end}}

Submitted at: {{.SubmittedAt}}

==========================================
Please contact the patient within 24 hours to confirm the appointment.
`))

type messageData struct {
	*domain.Submission
	SubmittedAt  string
	NotSpecified string
	Flexible     string
	Routine      string
}

// BuildMessage renders the notification for a validated submission. The same
// submission, recipient and timestamp always produce the same bytes.
func BuildMessage(sub *domain.Submission, recipient string, submittedAt time.Time) (*domain.OutboundMessage, error) {
	data := messageData{
		Submission:   sub,
		SubmittedAt:  submittedAt.Format(TimestampLayout),
		NotSpecified: PlaceholderNotSpecified,
		Flexible:     PlaceholderFlexible,
		Routine:      PlaceholderRoutine,
	}

	tmpl := contactBodyTemplate
	subject := fmt.Sprintf("New Contact Form Submission from %s", sub.Name)
	if sub.IsAppointment() {
		if sub.Appointment == nil {
			return nil, fmt.Errorf("appointment submission without appointment details")
		}
		tmpl = appointmentBodyTemplate
		subject = fmt.Sprintf("NEW APPOINTMENT BOOKING - %s (%s)", sub.Name, sub.Appointment.ConsultationType)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	return &domain.OutboundMessage{
		Subject:   subject,
		Body:      body.String(),
		Recipient: recipient,
	}, nil
}
