package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"evermore/internal/domain"

	"gorm.io/gorm"
)

var (
	// ErrAmbiguousMatch means more than one active gallery matched an
	// (email, code) or (slug, code) pair. The store is supposed to keep these
	// unique; a duplicate is a configuration error, not a lookup miss.
	ErrAmbiguousMatch = errors.New("multiple active galleries match credentials")
)

type ClientGalleryRepository interface {
	Create(ctx context.Context, g *domain.ClientGallery) error
	Update(ctx context.Context, g *domain.ClientGallery) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.ClientGallery, error)
	GetActiveBySlug(ctx context.Context, slug string) (*domain.ClientGallery, error)
	FindActiveByCredentials(ctx context.Context, email, slug, code string) (*domain.ClientGallery, error)
	List(ctx context.Context, limit, offset int) ([]domain.ClientGallery, int64, error)
	IncrementViewCount(ctx context.Context, id string, accessedAt time.Time) error
}

type clientGalleryRepository struct {
	db *gorm.DB
}

func NewClientGalleryRepository(db *gorm.DB) ClientGalleryRepository {
	return &clientGalleryRepository{db: db}
}

func (r *clientGalleryRepository) Create(ctx context.Context, g *domain.ClientGallery) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *clientGalleryRepository) Update(ctx context.Context, g *domain.ClientGallery) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *clientGalleryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.ClientGallery{}).Error
}

func (r *clientGalleryRepository) GetByID(ctx context.Context, id string) (*domain.ClientGallery, error) {
	var g domain.ClientGallery
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *clientGalleryRepository) GetActiveBySlug(ctx context.Context, slug string) (*domain.ClientGallery, error) {
	var g domain.ClientGallery
	err := r.db.WithContext(ctx).
		Where("gallery_slug = ? AND status = ?", slug, domain.GalleryActive).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// FindActiveByCredentials looks up the single active gallery matching the
// access code plus either the client email or the slug. The code is matched
// uppercased and trimmed, the email lowercased and trimmed. Exactly one of
// email/slug must be non-empty.
func (r *clientGalleryRepository) FindActiveByCredentials(ctx context.Context, email, slug, code string) (*domain.ClientGallery, error) {
	q := r.db.WithContext(ctx).
		Where("access_code = ? AND status = ?",
			strings.ToUpper(strings.TrimSpace(code)), domain.GalleryActive)

	if email != "" {
		q = q.Where("client_email = ?", strings.ToLower(strings.TrimSpace(email)))
	} else {
		q = q.Where("gallery_slug = ?", slug)
	}

	var matches []domain.ClientGallery
	if err := q.Limit(2).Find(&matches).Error; err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, gorm.ErrRecordNotFound
	case 1:
		return &matches[0], nil
	default:
		return nil, ErrAmbiguousMatch
	}
}

func (r *clientGalleryRepository) List(ctx context.Context, limit, offset int) ([]domain.ClientGallery, int64, error) {
	var galleries []domain.ClientGallery
	var total int64

	if err := r.db.WithContext(ctx).Model(&domain.ClientGallery{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&galleries).Error; err != nil {
		return nil, 0, err
	}

	return galleries, total, nil
}

// IncrementViewCount is the fire-and-forget side effect of a successful gate
// pass: bumps view_count and touches last_accessed_at in one statement.
func (r *clientGalleryRepository) IncrementViewCount(ctx context.Context, id string, accessedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.ClientGallery{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"view_count":       gorm.Expr("view_count + 1"),
			"last_accessed_at": accessedAt,
		}).Error
}
