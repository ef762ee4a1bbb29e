package repository

import (
	"context"
	"time"

	"evermore/internal/domain"

	"gorm.io/gorm"
)

// DownloadRepository is write-mostly: the bundler appends, the admin lists.
type DownloadRepository interface {
	Record(ctx context.Context, rec *domain.DownloadRecord) error
	ListByGallery(ctx context.Context, galleryID string) ([]domain.DownloadRecord, error)
}

type downloadRepository struct {
	db *gorm.DB
}

func NewDownloadRepository(db *gorm.DB) DownloadRepository {
	return &downloadRepository{db: db}
}

func (r *downloadRepository) Record(ctx context.Context, rec *domain.DownloadRecord) error {
	if rec.DownloadedAt.IsZero() {
		rec.DownloadedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *downloadRepository) ListByGallery(ctx context.Context, galleryID string) ([]domain.DownloadRecord, error) {
	var records []domain.DownloadRecord
	err := r.db.WithContext(ctx).
		Where("gallery_id = ?", galleryID).
		Order("downloaded_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

type AnalyticsRepository interface {
	CreateSession(ctx context.Context, s *domain.AnalyticsSession) error
	UpdateSession(ctx context.Context, id string, updates map[string]any) error
	ListByGallery(ctx context.Context, galleryID string) ([]domain.AnalyticsSession, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CreateSession(ctx context.Context, s *domain.AnalyticsSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *analyticsRepository) UpdateSession(ctx context.Context, id string, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&domain.AnalyticsSession{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *analyticsRepository) ListByGallery(ctx context.Context, galleryID string) ([]domain.AnalyticsSession, error) {
	var sessions []domain.AnalyticsSession
	err := r.db.WithContext(ctx).
		Where("gallery_id = ?", galleryID).
		Order("session_start DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
