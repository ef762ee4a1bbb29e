// Package partner serves the wedding vendor directory and partnership
// inquiries.
package partner

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"evermore/internal/domain"
	"evermore/internal/repository"
)

type Service struct {
	partners repository.PartnerRepository
	log      *slog.Logger
}

func NewService(partners repository.PartnerRepository, log *slog.Logger) *Service {
	return &Service{partners: partners, log: log}
}

// List returns active partners, optionally narrowed to one category or to
// the featured set.
func (s *Service) List(ctx context.Context, category string, featuredOnly bool) ([]domain.Partner, error) {
	if featuredOnly {
		return s.partners.ListFeatured(ctx)
	}
	if category != "" {
		return s.partners.ListByCategory(ctx, domain.PartnerCategory(strings.ToLower(category)))
	}
	return s.partners.ListActive(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Partner, error) {
	return s.partners.GetByID(ctx, id)
}

// SubmitInquiry stores a vendor's request to join the directory.
func (s *Service) SubmitInquiry(ctx context.Context, req InquiryRequest) (*domain.PartnershipInquiry, error) {
	inq := &domain.PartnershipInquiry{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           strings.TrimSpace(req.Phone),
		CompanyName:     strings.TrimSpace(req.CompanyName),
		CompanyCategory: strings.ToLower(strings.TrimSpace(req.CompanyCategory)),
		Website:         strings.TrimSpace(req.Website),
		Message:         strings.TrimSpace(req.Message),
		Status:          domain.InquiryPending,
	}

	if err := s.partners.CreateInquiry(ctx, inq); err != nil {
		return nil, err
	}

	s.log.Info("partnership inquiry submitted", "inquiry_id", inq.ID, "company", inq.CompanyName)
	return inq, nil
}
