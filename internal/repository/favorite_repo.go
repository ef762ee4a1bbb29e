package repository

import (
	"context"
	"errors"

	"evermore/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// FavoriteRepository stores (gallery, client email, image) favorite tuples.
type FavoriteRepository interface {
	Add(ctx context.Context, galleryID, clientEmail, imageID string) error
	Remove(ctx context.Context, galleryID, clientEmail, imageID string) error
	ListImageIDs(ctx context.Context, galleryID, clientEmail string) ([]string, error)
	Exists(ctx context.Context, galleryID, clientEmail, imageID string) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the tuple. A concurrent duplicate insert (two tabs toggling the
// same image) hits the unique index; that is treated as already-favorited,
// not an error.
func (r *favoriteRepository) Add(ctx context.Context, galleryID, clientEmail, imageID string) error {
	fav := &domain.GalleryFavorite{
		GalleryID:     galleryID,
		ClientEmail:   clientEmail,
		ImagePublicID: imageID,
	}

	err := r.db.WithContext(ctx).Create(fav).Error
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *favoriteRepository) Remove(ctx context.Context, galleryID, clientEmail, imageID string) error {
	return r.db.WithContext(ctx).
		Where("gallery_id = ? AND client_email = ? AND image_public_id = ?",
			galleryID, clientEmail, imageID).
		Delete(&domain.GalleryFavorite{}).Error
}

func (r *favoriteRepository) ListImageIDs(ctx context.Context, galleryID, clientEmail string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&domain.GalleryFavorite{}).
		Where("gallery_id = ? AND client_email = ?", galleryID, clientEmail).
		Pluck("image_public_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, galleryID, clientEmail, imageID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.GalleryFavorite{}).
		Where("gallery_id = ? AND client_email = ? AND image_public_id = ?",
			galleryID, clientEmail, imageID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
