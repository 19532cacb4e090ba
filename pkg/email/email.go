package email

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"physiowell-web/config"
	"physiowell-web/pkg/logger"
	"strings"
	"time"
)

var ErrNotConfigured = errors.New("email credentials not configured")

// EmailService delivers notifications through the practice's SMTP relay.
// One Dispatch is one attempt: there is no retry and no queue.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	transport Transport
	now       func() time.Time
}

type Option func(*EmailService)

// WithTransport replaces the SMTP transport.
func WithTransport(t Transport) Option {
	return func(s *EmailService) {
		s.transport = t
	}
}

// NewEmailService creates a new email service from the relay configuration
func NewEmailService(cfg *config.Config, opts ...Option) *EmailService {
	s := &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPUsername, // relay login is the sender identity
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.transport == nil {
		s.transport = NewSMTPTransport(s.host, s.port, s.username, s.password)
	}
	return s
}

// Dispatch sends a plain-text message and reports whether it was delivered to
// the relay. Failures are logged here and never returned to the caller.
func (s *EmailService) Dispatch(ctx context.Context, subject, body, to string) bool {
	if err := s.Send(ctx, subject, body, to); err != nil {
		if errors.Is(err, ErrNotConfigured) {
			logger.Log.Warn("Email credentials not configured, skipping dispatch", "to", to)
			return false
		}
		logger.Log.Error("Failed to send email", "to", to, "subject", subject, "error", err)
		return false
	}

	logger.Log.Info("Email sent successfully", "to", to)
	return true
}

// Send is the error-returning form of Dispatch.
func (s *EmailService) Send(ctx context.Context, subject, body, to string) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("no recipient address")
	}

	msg := buildMessage(s.fromEmail, to, subject, body, s.now())

	if err := s.transport.Send(ctx, Envelope{
		From: s.fromEmail,
		To:   []string{to},
		Data: msg,
	}); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the relay credentials are present
func (s *EmailService) IsConfigured() bool {
	return s.username != "" && s.password != ""
}

func buildMessage(from, to, subject, body string, date time.Time) []byte {
	// Normalize line endings so the DATA section is valid CRLF text
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\n", "\r\n")

	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"Date: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"Content-Transfer-Encoding: 8bit\r\n"+
			"\r\n"+
			"%s\r\n",
		from,
		to,
		mime.QEncoding.Encode("utf-8", subject),
		date.Format(time.RFC1123Z),
		body,
	))
}
