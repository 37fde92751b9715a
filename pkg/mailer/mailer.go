// Package mailer provides functionality to send emails over SMTP. It is
// used to send payment receipts; any SMTP server works, including Mailtrap
// (smtp.mailtrap.io) for development and testing environments.
package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer defines the interface for sending email.
type Mailer interface {
	Send(recipient, subject, body string) error
}

// SMTPMailer sends email through a plain-auth SMTP server.
type SMTPMailer struct {
	host   string
	port   string
	user   string
	pass   string
	sender string
}

// NewSMTPMailerConfig contains options for creating a new SMTPMailer.
type NewSMTPMailerConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

// NewSMTPMailer creates a new SMTPMailer. Credentials are required.
func NewSMTPMailer(cfg NewSMTPMailerConfig) (*SMTPMailer, error) {
	if cfg.Host == "" || cfg.Port == "" {
		return nil, errors.New("mailer: SMTP host and port are required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("mailer: SMTP username and password are required")
	}
	if cfg.Sender == "" {
		return nil, errors.New("mailer: sender address is required")
	}
	return &SMTPMailer{
		host:   cfg.Host,
		port:   cfg.Port,
		user:   cfg.Username,
		pass:   cfg.Password,
		sender: cfg.Sender,
	}, nil
}

// Send delivers a single message. The Content-Type is inferred from the
// body: bodies containing basic HTML tags are sent as text/html.
func (m *SMTPMailer) Send(recipient, subject, body string) error {
	if recipient == "" {
		return errors.New("mailer: recipient cannot be empty")
	}
	if subject == "" {
		return errors.New("mailer: subject cannot be empty")
	}

	contentType := "text/plain; charset=\"UTF-8\""
	lower := strings.ToLower(body)
	if strings.Contains(lower, "<html") || strings.Contains(lower, "<p>") {
		contentType = "text/html; charset=\"UTF-8\""
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", m.sender),
		fmt.Sprintf("To: %s", recipient),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		fmt.Sprintf("Content-Type: %s", contentType),
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, m.sender, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("mailer: failed to send to %s: %w", recipient, err)
	}
	return nil
}
