// Package mailer relays operator notifications through an SMTP server.
package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Message is a single plain-text email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Bytes renders the message with CRLF headers as expected by net/smtp.
func (m Message) Bytes() []byte {
	var b strings.Builder
	b.WriteString("From: " + m.From + "\r\n")
	b.WriteString("To: " + m.To + "\r\n")
	if m.ReplyTo != "" {
		b.WriteString("Reply-To: " + sanitizeHeader(m.ReplyTo) + "\r\n")
	}
	b.WriteString("Subject: " + sanitizeHeader(m.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(crlf(m.Body))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// crlf rewrites any mix of CRLF, CR and LF line endings as CRLF.
func crlf(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\r", "\n")
	return strings.ReplaceAll(body, "\n", "\r\n")
}

// header values come from form input; strip anything that could start a new header line
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

// Notifier sends one message. Implementations must be safe for concurrent use.
type Notifier interface {
	Send(msg Message) error
}

// SMTP sends mail with PLAIN auth. No explicit timeout is applied.
type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string

	// swapped in tests
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTP(host, port, username, password string) *SMTP {
	return &SMTP{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		sendMail: smtp.SendMail,
	}
}

func (s *SMTP) Send(msg Message) error {
	if s.Username == "" || s.Password == "" {
		return ErrNotConfigured
	}
	if msg.To == "" {
		return fmt.Errorf("mailer: no recipient")
	}
	if msg.From == "" {
		msg.From = s.Username
	}
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	send := s.sendMail
	if send == nil {
		send = smtp.SendMail
	}
	if err := send(s.Host+":"+s.Port, auth, s.Username, []string{msg.To}, msg.Bytes()); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", msg.To, err)
	}
	return nil
}
