// Package contact handles marketing-site contact form submissions.
package contact

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"evermore/internal/domain"
	"evermore/internal/repository"
)

type Service struct {
	contacts repository.ContactRepository
	log      *slog.Logger
}

func NewService(contacts repository.ContactRepository, log *slog.Logger) *Service {
	return &Service{contacts: contacts, log: log}
}

func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.Contact, error) {
	contact := &domain.Contact{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.log.Info("contact form submitted", "contact_id", contact.ID)
	return contact, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.contacts.Delete(ctx, id)
}
