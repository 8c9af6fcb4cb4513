// Package email provides the notification collaborator for the contact
// pipeline. Failures are communicated as values, never as errors or panics:
// a broken transport is an expected business outcome upstream.
package email

import (
	"context"
	"crypto/tls"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/iis-mfg/precision-site/internal/config"
	"github.com/iis-mfg/precision-site/internal/types"
)

// Result is the outcome of one notification attempt.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Mailer sends the contact-form notification.
type Mailer interface {
	Send(ctx context.Context, form types.ContactForm) Result
}

// dialTimeout bounds the SMTP connection attempt so a dead transport
// resolves to a failure value instead of hanging the request.
const dialTimeout = 10 * time.Second

// SMTPMailer sends notifications over plain SMTP with the credentials from
// the environment.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer creates a mailer for the given transport configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers the notification email. It never returns an error: transport
// problems, including missing configuration, come back as a failed Result.
func (m *SMTPMailer) Send(ctx context.Context, form types.ContactForm) Result {
	if !m.cfg.Configured() {
		return Result{Error: "smtp transport not configured"}
	}

	msg, err := buildMessage(m.cfg, form)
	if err != nil {
		return Result{Error: "failed to build message: " + err.Error()}
	}

	if err := m.deliver(ctx, msg); err != nil {
		return Result{Error: err.Error()}
	}
	return Result{Success: true}
}

// deliver speaks SMTP over a dial bounded by both the timeout and the
// request context.
func (m *SMTPMailer) deliver(ctx context.Context, msg []byte) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer func() { _ = client.Close() }()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(m.cfg.To); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}
