// Package analytics records gallery visit telemetry. All writes are
// best-effort: a dropped analytics row never surfaces to the client.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"evermore/internal/domain"
	"evermore/internal/repository"
)

type Service struct {
	sessions repository.AnalyticsRepository
	log      *slog.Logger
}

func NewService(sessions repository.AnalyticsRepository, log *slog.Logger) *Service {
	return &Service{sessions: sessions, log: log}
}

// StartSession opens a visit record and returns its id for later patches.
func (s *Service) StartSession(ctx context.Context, galleryID, clientEmail, ip, userAgent string) (string, error) {
	rec := &domain.AnalyticsSession{
		ID:           uuid.NewString(),
		GalleryID:    galleryID,
		ClientEmail:  clientEmail,
		SessionStart: time.Now(),
		IPAddress:    ip,
		UserAgent:    userAgent,
	}

	if err := s.sessions.CreateSession(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// EndSession closes a visit record with its duration and view count. The
// duration is client-reported; the server only timestamps the close.
func (s *Service) EndSession(ctx context.Context, sessionID string, imagesViewed int, durationSeconds int64) error {
	return s.sessions.UpdateSession(ctx, sessionID, map[string]any{
		"session_end":              time.Now(),
		"images_viewed":            imagesViewed,
		"session_duration_seconds": durationSeconds,
	})
}

// RecordImagesViewed patches the running view count mid-session.
func (s *Service) RecordImagesViewed(ctx context.Context, sessionID string, imagesViewed int) error {
	return s.sessions.UpdateSession(ctx, sessionID, map[string]any{
		"images_viewed": imagesViewed,
	})
}

// ListByGallery returns the visit history for the admin dashboard.
func (s *Service) ListByGallery(ctx context.Context, galleryID string) ([]domain.AnalyticsSession, error) {
	return s.sessions.ListByGallery(ctx, galleryID)
}
