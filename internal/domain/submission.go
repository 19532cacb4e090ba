package domain

import (
	"context"
	"time"
)

// AppointmentBookingService is the hidden "service" value the booking form posts.
const AppointmentBookingService = "appointment-booking"

// Kind classifies a submission as a general enquiry or an appointment request
type Kind string

const (
	KindContact     Kind = "contact"
	KindAppointment Kind = "appointment"
)

const (
	ContactFormPath     = "/contact"
	AppointmentFormPath = "/book-appointment"
)

// FormPath is the page a failed submission of this kind is sent back to.
func (k Kind) FormPath() string {
	if k == KindAppointment {
		return AppointmentFormPath
	}
	return ContactFormPath
}

// SubmissionForm is the raw POST /submit-contact body. Missing fields bind as "".
type SubmissionForm struct {
	Name             string `form:"name"`
	Email            string `form:"email"`
	Phone            string `form:"phone"`
	Service          string `form:"service"`
	Message          string `form:"message"`
	ServiceType      string `form:"service-type"`
	ConsultationType string `form:"consultation-type"`
	PreferredDate    string `form:"preferred-date"`
	PreferredTime    string `form:"preferred-time"`
	Urgency          string `form:"urgency"`
	Age              string `form:"age"`
	PainLevel        string `form:"pain-level"`
	Duration         string `form:"duration"`
	FirstTime        string `form:"first-time"`
}

// Kind is derived only from the service field.
func (f *SubmissionForm) Kind() Kind {
	if f.Service == AppointmentBookingService {
		return KindAppointment
	}
	return KindContact
}

// Submission is a validated form post. Appointment is nil for contact enquiries.
type Submission struct {
	Kind        Kind
	Name        string
	Email       string
	Phone       string
	Service     string
	Message     string
	Appointment *AppointmentDetails
}

func (s *Submission) IsAppointment() bool {
	return s.Kind == KindAppointment
}

// AppointmentDetails holds the booking-only fields. Age and PainLevel are kept
// as entered; they are never parsed as numbers.
type AppointmentDetails struct {
	ServiceType      string
	ConsultationType string
	PreferredDate    string
	PreferredTime    string
	Urgency          string
	Age              string
	PainLevel        string
	Duration         string
	FirstTime        bool
}

// OutboundMessage is the notification handed to the mailer
type OutboundMessage struct {
	Subject   string
	Body      string
	Recipient string
}

// ValidationError is a user-facing rejection of a submission
type ValidationError struct {
	Message string
	Kind    Kind
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FormPath is where the user is sent to correct the submission.
func (e *ValidationError) FormPath() string {
	return e.Kind.FormPath()
}

// SubmissionResult is returned once validation passed. Delivered reports the
// mail relay outcome and does not affect what the user sees.
type SubmissionResult struct {
	Submission  *Submission
	Message     *OutboundMessage
	Delivered   bool
	SubmittedAt time.Time
}

// Mailer dispatches one message and reports success. It never returns an error.
type Mailer interface {
	Dispatch(ctx context.Context, subject, body, to string) bool
}

// SubmissionUsecase defines the interface for contact and booking submissions
type SubmissionUsecase interface {
	// Submit validates the form, formats the notification and dispatches it.
	// A *ValidationError is returned when required fields are missing.
	Submit(ctx context.Context, form *SubmissionForm) (*SubmissionResult, error)
}
