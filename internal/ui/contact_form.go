package ui

import (
	"context"
	"sync"
	"time"

	"github.com/zaqqye/portfolio_backend/internal/client"
)

type FormStatus string

const (
	FormIdle    FormStatus = "idle"
	FormSending FormStatus = "sending"
	FormSuccess FormStatus = "success"
	FormError   FormStatus = "error"
)

const (
	StatusSendingText = "Sending message..."
	StatusSuccessText = "Message sent successfully!"
	StatusErrorText   = "Error sending message. Please try again."
)

// SuccessRevertDelay is how long the success text stays before the form resets.
const SuccessRevertDelay = time.Second

// ContactSubmitter is satisfied by *client.HTTPClient.
type ContactSubmitter interface {
	SubmitContact(ctx context.Context, req client.ContactRequest) (string, error)
}

// ContactForm tracks the fields and submission status of the contact form.
// Success reverts to idle after RevertDelay and fires OnRedirect; errors stay
// until the next submit.
type ContactForm struct {
	Submitter   ContactSubmitter
	RevertDelay time.Duration
	OnRedirect  func()

	mu     sync.Mutex
	fields client.ContactRequest
	status FormStatus
	seq    int
	timer  *time.Timer
}

func NewContactForm(sub ContactSubmitter) *ContactForm {
	return &ContactForm{
		Submitter:   sub,
		RevertDelay: SuccessRevertDelay,
		status:      FormIdle,
	}
}

func (f *ContactForm) SetFields(name, email, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = client.ContactRequest{Name: name, Email: email, Message: message}
}

func (f *ContactForm) Fields() client.ContactRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *ContactForm) Status() FormStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == "" {
		return FormIdle
	}
	return f.status
}

// StatusText is the user-visible line for the current status; empty when idle.
func (f *ContactForm) StatusText() string {
	switch f.Status() {
	case FormSending:
		return StatusSendingText
	case FormSuccess:
		return StatusSuccessText
	case FormError:
		return StatusErrorText
	}
	return ""
}

// Submit sends the current fields and blocks until the server answers.
func (f *ContactForm) Submit(ctx context.Context) FormStatus {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.status = FormSending
	req := f.fields
	f.mu.Unlock()

	_, err := f.Submitter.SubmitContact(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq {
		// a newer submit owns the status
		return f.status
	}
	if err != nil {
		f.status = FormError
		return f.status
	}
	f.status = FormSuccess
	f.fields = client.ContactRequest{}
	delay := f.RevertDelay
	if delay <= 0 {
		delay = SuccessRevertDelay
	}
	f.timer = time.AfterFunc(delay, func() { f.revert(seq) })
	return f.status
}

func (f *ContactForm) revert(seq int) {
	f.mu.Lock()
	if seq != f.seq || f.status != FormSuccess {
		f.mu.Unlock()
		return
	}
	f.status = FormIdle
	f.timer = nil
	redirect := f.OnRedirect
	f.mu.Unlock()
	if redirect != nil {
		redirect()
	}
}
