package mailer

import (
	"errors"
	"fmt"
	"net/smtp"

	"github.com/google/uuid"

	"portfolio-backend/config"
	"portfolio-backend/utils"
)

// SendStatus is the outcome of a delivery attempt.
type SendStatus string

const (
	StatusSent    SendStatus = "sent"
	StatusSkipped SendStatus = "skipped"
	StatusFailed  SendStatus = "failed"
)

// Result reports what happened to a single message. A skipped or failed
// delivery is visible here instead of being swallowed.
type Result struct {
	Status    SendStatus
	MessageID string
	Err       error
}

func (r Result) Delivered() bool {
	return r.Status == StatusSent
}

// Sender abstracts the mail transport so callers can be tested without SMTP.
type Sender interface {
	Send(to, subject, htmlBody string) Result
	Configured() bool
	Verify() error
}

// ErrNotConfigured is returned by Verify when the transport has no credentials.
var ErrNotConfigured = errors.New("mail transport not configured")

// Mailer sends HTML mail over SMTP with configuration injected at construction.
type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Configured() bool {
	return m.cfg.Configured()
}

// Send attempts delivery of one message. An unconfigured transport degrades
// to a logged no-op rather than an error.
func (m *Mailer) Send(to, subject, htmlBody string) Result {
	if !m.cfg.Configured() {
		utils.LogInfo("Email skipped (transport not configured)")
		return Result{Status: StatusSkipped}
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.cfg.Host)
	message := buildMessage(m.cfg.From, to, subject, messageID, htmlBody)

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.From, []string{to}, message); err != nil {
		utils.LogError(err, "Email delivery failed")
		return Result{Status: StatusFailed, Err: err}
	}

	utils.LogSuccess("Email sent: " + messageID)
	return Result{Status: StatusSent, MessageID: messageID}
}

// Verify dials the SMTP server and disconnects without sending mail.
func (m *Mailer) Verify() error {
	if !m.cfg.Configured() {
		return ErrNotConfigured
	}

	client, err := smtp.Dial(m.cfg.Addr())
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Quit()
}

func buildMessage(from, to, subject, messageID, htmlBody string) []byte {
	headers := "From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Message-ID: " + messageID + "\r\n" +
		"MIME-version: 1.0;\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	return []byte(headers + htmlBody)
}
