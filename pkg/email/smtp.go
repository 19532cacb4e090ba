package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
)

var ErrStartTLSUnsupported = errors.New("relay does not support STARTTLS")

// Envelope is what a Transport puts on the wire.
type Envelope struct {
	From string
	To   []string
	Data []byte
}

type Transport interface {
	Send(ctx context.Context, env Envelope) error
}

// SMTPTransport opens a fresh connection per message: dial, STARTTLS,
// AUTH PLAIN, MAIL/RCPT/DATA, QUIT.
type SMTPTransport struct {
	host      string
	port      string
	username  string
	password  string
	tlsConfig *tls.Config
}

type TransportOption func(*SMTPTransport)

// WithTLSConfig sets the STARTTLS client config, e.g. to trust a private CA.
// ServerName defaults to the relay host.
func WithTLSConfig(cfg *tls.Config) TransportOption {
	return func(t *SMTPTransport) {
		if cfg != nil {
			t.tlsConfig = cfg.Clone()
		}
	}
}

func NewSMTPTransport(host, port, username, password string, opts ...TransportOption) *SMTPTransport {
	t := &SMTPTransport{
		host:     host,
		port:     port,
		username: username,
		password: password,
		tlsConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.tlsConfig.ServerName == "" {
		t.tlsConfig.ServerName = host
	}
	if t.tlsConfig.MinVersion < tls.VersionTLS12 {
		t.tlsConfig.MinVersion = tls.VersionTLS12
	}
	return t
}

func (t *SMTPTransport) Send(ctx context.Context, env Envelope) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(t.host, t.port))
	if err != nil {
		return fmt.Errorf("dial relay: %w", err)
	}

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); !ok {
		return ErrStartTLSUnsupported
	}
	if err := client.StartTLS(t.tlsConfig); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}

	if err := client.Auth(smtp.PlainAuth("", t.username, t.password, t.host)); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := client.Mail(env.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	for _, rcpt := range env.To {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt to %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(env.Data); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close message: %w", err)
	}

	return client.Quit()
}
