package services

import (
	"context"
	"strings"
	"time"

	"ansh-apparels/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ContactService struct {
	contacts ContactStore
	notifier ContactNotifier
}

// NewContactService builds the service; notifier may be nil when mail is not
// configured.
func NewContactService(contacts ContactStore, notifier ContactNotifier) *ContactService {
	return &ContactService{contacts: contacts, notifier: notifier}
}

func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	name := strings.TrimSpace(req.Name)
	message := strings.TrimSpace(req.Message)
	if name == "" || message == "" {
		return nil, models.NewValidationError("Name and message are required")
	}

	msg := &models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     optionalField(req.Phone),
		Email:     optionalField(req.Email),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyContact(*msg); err != nil {
			log.Warn().Err(err).Str("contact_id", msg.ID).Msg("contact notification failed")
		}
	}
	return msg, nil
}

func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.contacts.List(ctx)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	ok, err := s.contacts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrNotFound
	}
	return nil
}

func optionalField(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
