package v1

import (
	"errors"
	"fmt"
	"net/http"
	"physiowell-web/internal/delivery/http/response"
	"physiowell-web/internal/delivery/http/view"
	"physiowell-web/internal/domain"
	"physiowell-web/pkg/flash"
	"physiowell-web/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	processingErrorMessage    = "Sorry, there was an error processing your request. Please try again."
	appointmentSuccessMessage = "Your appointment request has been submitted! We'll contact you within 24 hours to confirm."
	contactSuccessMessage     = "Thank you for your message! We'll get back to you soon."
)

type ContactHandler struct {
	submissionUC domain.SubmissionUsecase
	flashes      *flash.Store
	renderer     *view.Renderer
}

// NewContactHandler registers the form submission route (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase, flashes *flash.Store, renderer *view.Renderer) {
	handler := &ContactHandler{
		submissionUC: submissionUC,
		flashes:      flashes,
		renderer:     renderer,
	}

	public.POST("/submit-contact", handler.SubmitContact)
}

// SubmitContact handles both the contact form and the appointment booking form.
// Invalid submissions are sent back to their form with a flash message; a valid
// one always gets the confirmation page, whether or not the email went out.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var form domain.SubmissionForm

	defer func() {
		if r := recover(); r != nil {
			h.fail(c, &form, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		h.fail(c, &form, err)
		return
	}

	result, err := h.submissionUC.Submit(c.Request.Context(), &form)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			h.redirect(c, vErr.FormPath(), flash.Error(vErr.Message))
			return
		}
		h.fail(c, &form, err)
		return
	}

	message := contactSuccessMessage
	if result.Submission.IsAppointment() {
		message = appointmentSuccessMessage
	}

	h.renderer.HTML(c, http.StatusOK, "contact_success.html", gin.H{
		"Title":         "Thank You",
		"Name":          result.Submission.Name,
		"IsAppointment": result.Submission.IsAppointment(),
	}, flash.Success(message))
}

func (h *ContactHandler) fail(c *gin.Context, form *domain.SubmissionForm, err error) {
	logger.Log.Error("Error processing form submission",
		"request_id", response.RequestID(c),
		"error", err,
	)
	h.redirect(c, form.Kind().FormPath(), flash.Error(processingErrorMessage))
}

func (h *ContactHandler) redirect(c *gin.Context, path string, msg flash.Message) {
	if err := h.flashes.Add(c, msg); err != nil {
		logger.Log.Error("Failed to set flash message", "error", err)
	}
	c.Redirect(http.StatusFound, path)
}
