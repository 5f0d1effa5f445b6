// Package mailer dispatches password-recovery codes out of band. Delivery is
// best-effort: callers fire and forget, and a failed send only logs.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"job-board-api/config"
)

// Mailer sends a one-time recovery code to a destination address.
type Mailer interface {
	SendOTP(to, code string) error
}

// SMTPMailer delivers mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer creates a mailer from the SMTP configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
		from: cfg.From,
	}
}

var _ Mailer = (*SMTPMailer)(nil)

// SendOTP mails the recovery code to the given address.
func (m *SMTPMailer) SendOTP(to, code string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Password Recovery OTP\r\n\r\nYour OTP for password recovery is: %s\r\n",
		m.from, to, code)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send OTP mail to %s: %w", to, err)
	}
	return nil
}

// LogMailer writes the code to the process log instead of sending mail.
// Used when no SMTP host is configured (local development).
type LogMailer struct{}

var _ Mailer = (*LogMailer)(nil)

func (LogMailer) SendOTP(to, code string) error {
	log.Printf("LogMailer: OTP for %s is %s", to, code)
	return nil
}
