// Package contact records contact-form submissions and notifies the site operator.
//
// Persistence and notification are not transactional: a submission stays stored even
// when the notification that follows it fails.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/zaqqye/portfolio_backend/internal/mailer"
	"github.com/zaqqye/portfolio_backend/internal/models"
	"github.com/zaqqye/portfolio_backend/internal/utils"
	"github.com/zaqqye/portfolio_backend/internal/ws"
)

const NotificationSubject = "New Portfolio Contact Form Submission"

var (
	ErrInvalidSubmission = errors.New("invalid submission")
	ErrStorage           = errors.New("storing submission failed")
	ErrNotification      = errors.New("notifying operator failed")
)

// Policy decides which submissions are accepted.
type Policy string

const (
	// PolicyNone accepts any strings as-is.
	PolicyNone Policy = "none"
	// PolicyStrict requires every field and a well-formed email address.
	PolicyStrict Policy = "strict"
)

type Submission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Result reports which side effects completed. Callers decide whether a partial
// outcome counts as success.
type Result struct {
	Persisted bool
	Notified  bool
	Contact   models.Contact
}

// Publisher receives every stored submission; *ws.ContactHub satisfies it.
type Publisher interface {
	Publish(event ws.ContactEvent)
}

type Service struct {
	DB        *gorm.DB
	Notifier  mailer.Notifier
	Publisher Publisher
	Policy    Policy
	From      string
	NotifyTo  string

	validate *validator.Validate
}

func NewService(db *gorm.DB, notifier mailer.Notifier, policy Policy, from, notifyTo string) *Service {
	if policy == "" {
		policy = PolicyNone
	}
	return &Service{
		DB:       db,
		Notifier: notifier,
		Policy:   policy,
		From:     from,
		NotifyTo: notifyTo,
		validate: validator.New(),
	}
}

// Submit validates, persists and notifies, in that order, stopping at the first failure.
func (s *Service) Submit(ctx context.Context, sub Submission) (Result, error) {
	var res Result
	if err := s.check(sub); err != nil {
		return res, err
	}

	rec := models.Contact{Name: sub.Name, Email: sub.Email, Message: sub.Message}
	if err := s.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return res, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	res.Persisted = true
	res.Contact = rec
	log.Printf("contact %s stored (sender %s)", rec.ID, utils.Fingerprint(rec.Email))

	if s.Notifier == nil {
		return res, fmt.Errorf("%w: no notifier configured", ErrNotification)
	}
	if err := s.Notifier.Send(s.notification(rec)); err != nil {
		s.publish(rec, false)
		return res, fmt.Errorf("%w: %v", ErrNotification, err)
	}
	res.Notified = true
	s.publish(rec, true)
	return res, nil
}

func (s *Service) check(sub Submission) error {
	if s.Policy != PolicyStrict {
		return nil
	}
	v := s.validate
	if v == nil {
		v = validator.New()
	}
	if err := v.Struct(sub); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalidSubmission, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
	}
	return nil
}

func (s *Service) notification(rec models.Contact) mailer.Message {
	body := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s\n", rec.Name, rec.Email, rec.Message)
	return mailer.Message{
		From:    s.From,
		To:      s.NotifyTo,
		ReplyTo: rec.Email,
		Subject: NotificationSubject,
		Body:    body,
	}
}

func (s *Service) publish(rec models.Contact, notified bool) {
	if s.Publisher == nil {
		return
	}
	s.Publisher.Publish(ws.ContactEvent{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Message:   rec.Message,
		Notified:  notified,
		CreatedAt: rec.CreatedAt,
	})
}
