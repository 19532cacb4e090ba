package usecase_test

import (
	"context"
	"testing"
	"time"

	"physiowell-web/internal/domain"
	"physiowell-web/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const genericMessage = "Please fill in all required fields."

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Dispatch(ctx context.Context, subject, body, to string) bool {
	return m.Called(ctx, subject, body, to).Bool(0)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Conversion(requestID, clientIP, userAgent string, receivedAt time.Time, payload any) {
	m.Called(requestID, clientIP, userAgent, receivedAt, payload)
}

func newUsecase(mailer domain.Mailer) domain.SubmissionUsecase {
	return usecase.NewSubmissionUsecase(mailer, "frontdesk@physiowell.example", validator.New(),
		usecase.WithClock(func() time.Time { return fixedTime }))
}

func appointmentForm() *domain.SubmissionForm {
	return &domain.SubmissionForm{
		Name:             "Jane Doe",
		Email:            "jane@example.com",
		Service:          domain.AppointmentBookingService,
		ServiceType:      "Back Pain",
		ConsultationType: "Video",
		Message:          "Lower back pain",
	}
}

func contactForm() *domain.SubmissionForm {
	return &domain.SubmissionForm{
		Name:    "John Smith",
		Email:   "john@example.com",
		Phone:   "0400 000 000",
		Service: "sports-injury",
		Message: "Do you treat runners?",
	}
}

func requireValidationError(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr
}

func TestSubmitRequiresNameAndEmail(t *testing.T) {
	for _, kind := range []string{"contact", "appointment"} {
		for _, field := range []string{"name", "email"} {
			t.Run(kind+" without "+field, func(t *testing.T) {
				mailer := new(MockMailer)
				uc := newUsecase(mailer)

				form := contactForm()
				if kind == "appointment" {
					form = appointmentForm()
				}
				if field == "name" {
					form.Name = ""
				} else {
					form.Email = "   "
				}

				_, err := uc.Submit(context.Background(), form)

				vErr := requireValidationError(t, err)
				assert.Equal(t, genericMessage, vErr.Message)
				assert.Equal(t, form.Kind().FormPath(), vErr.FormPath())
				mailer.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			})
		}
	}
}

func TestSubmitContactRequiresMessage(t *testing.T) {
	mailer := new(MockMailer)
	form := contactForm()
	form.Message = ""

	_, err := newUsecase(mailer).Submit(context.Background(), form)

	vErr := requireValidationError(t, err)
	assert.Equal(t, genericMessage, vErr.Message)
	assert.Equal(t, domain.KindContact, vErr.Kind)
	assert.Equal(t, "/contact", vErr.FormPath())
}

func TestSubmitAppointmentFieldMessages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.SubmissionForm)
		want   string
	}{
		{
			name:   "missing condition",
			mutate: func(f *domain.SubmissionForm) { f.Message = "" },
			want:   "Please describe your condition or symptoms.",
		},
		{
			name:   "missing service type",
			mutate: func(f *domain.SubmissionForm) { f.ServiceType = "" },
			want:   "Please select a service type.",
		},
		{
			name:   "missing consultation type",
			mutate: func(f *domain.SubmissionForm) { f.ConsultationType = "" },
			want:   "Please select a consultation type (In-Person or Video).",
		},
		{
			name: "condition reported before service type",
			mutate: func(f *domain.SubmissionForm) {
				f.Message = ""
				f.ServiceType = ""
			},
			want: "Please describe your condition or symptoms.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := new(MockMailer)
			form := appointmentForm()
			tt.mutate(form)

			_, err := newUsecase(mailer).Submit(context.Background(), form)

			vErr := requireValidationError(t, err)
			assert.Equal(t, tt.want, vErr.Message)
			assert.Equal(t, "/book-appointment", vErr.FormPath())
			mailer.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitClassifiesOnServiceOnly(t *testing.T) {
	// Booking fields without the sentinel service value are still a contact enquiry.
	form := contactForm()
	form.ServiceType = "Back Pain"
	form.ConsultationType = "Video"
	assert.Equal(t, domain.KindContact, form.Kind())

	form.Service = domain.AppointmentBookingService
	assert.Equal(t, domain.KindAppointment, form.Kind())
}

func TestSubmitAppointmentDispatchesToPracticeMailbox(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Dispatch", mock.Anything,
		"NEW APPOINTMENT BOOKING - Jane Doe (Video)",
		mock.AnythingOfType("string"),
		"frontdesk@physiowell.example",
	).Return(true).Once()

	result, err := newUsecase(mailer).Submit(context.Background(), appointmentForm())

	require.NoError(t, err)
	mailer.AssertExpectations(t)
	assert.True(t, result.Delivered)
	assert.True(t, result.Submission.IsAppointment())
	assert.Equal(t, "Jane Doe", result.Submission.Name)
	assert.Equal(t, fixedTime, result.SubmittedAt)
}

func TestSubmitSucceedsWhenDispatchFails(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false).Once()

	result, err := newUsecase(mailer).Submit(context.Background(), contactForm())

	require.NoError(t, err)
	assert.False(t, result.Delivered)
	assert.Equal(t, "New Contact Form Submission from John Smith", result.Message.Subject)
	mailer.AssertExpectations(t)
}

func TestSubmitNeverMailsTheSubmitter(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Dispatch", mock.Anything, mock.Anything, mock.Anything, "frontdesk@physiowell.example").Return(true).Once()

	result, err := newUsecase(mailer).Submit(context.Background(), contactForm())

	require.NoError(t, err)
	assert.NotEqual(t, "john@example.com", result.Message.Recipient)
	mailer.AssertExpectations(t)
}

func TestParseSubmissionFirstTime(t *testing.T) {
	v := validator.New()

	form := appointmentForm()
	sub, err := usecase.ParseSubmission(v, form)
	require.NoError(t, err)
	assert.False(t, sub.Appointment.FirstTime)

	form.FirstTime = "on"
	sub, err = usecase.ParseSubmission(v, form)
	require.NoError(t, err)
	assert.True(t, sub.Appointment.FirstTime)
}

func TestParseSubmissionKeepsOpaqueNumbers(t *testing.T) {
	form := appointmentForm()
	form.Age = "thirty-ish"
	form.PainLevel = "11/10"

	sub, err := usecase.ParseSubmission(validator.New(), form)

	require.NoError(t, err)
	assert.Equal(t, "thirty-ish", sub.Appointment.Age)
	assert.Equal(t, "11/10", sub.Appointment.PainLevel)
}

func TestParseSubmissionContactHasNoAppointment(t *testing.T) {
	sub, err := usecase.ParseSubmission(validator.New(), contactForm())

	require.NoError(t, err)
	assert.Nil(t, sub.Appointment)
	assert.False(t, sub.IsAppointment())
}

func TestTrackConversion(t *testing.T) {
	recorder := new(MockRecorder)
	payload := map[string]any{"conversion": "booking", "value": float64(1)}
	recorder.On("Conversion", "req-1", "203.0.113.7", "test-agent", mock.AnythingOfType("time.Time"), payload).Once()

	uc := usecase.NewConversionUsecase(recorder)
	uc.TrackConversion(context.Background(), &domain.ConversionEvent{
		Payload:   payload,
		RequestID: "req-1",
		ClientIP:  "203.0.113.7",
		UserAgent: "test-agent",
	})

	recorder.AssertExpectations(t)
}

type staticMailStatus bool

func (s staticMailStatus) IsConfigured() bool { return bool(s) }

func TestHealthCheck(t *testing.T) {
	assert.Equal(t, "configured", usecase.NewHealthUsecase(staticMailStatus(true)).Check(context.Background())["mail"])
	assert.Equal(t, "disabled", usecase.NewHealthUsecase(staticMailStatus(false)).Check(context.Background())["mail"])
	assert.Equal(t, "ok", usecase.NewHealthUsecase(nil).Check(context.Background())["status"])
}
