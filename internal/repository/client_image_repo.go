package repository

import (
	"context"

	"evermore/internal/domain"

	"gorm.io/gorm"
)

type ClientImageRepository interface {
	Create(ctx context.Context, img *domain.ClientImage) error
	GetByGalleryID(ctx context.Context, galleryID string) ([]domain.ClientImage, error)
	Delete(ctx context.Context, id string) error
	NextOrderIndex(ctx context.Context, galleryID string) (int, error)
}

type clientImageRepository struct {
	db *gorm.DB
}

func NewClientImageRepository(db *gorm.DB) ClientImageRepository {
	return &clientImageRepository{db: db}
}

func (r *clientImageRepository) Create(ctx context.Context, img *domain.ClientImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

// GetByGalleryID returns the gallery's images in admin-curated order.
func (r *clientImageRepository) GetByGalleryID(ctx context.Context, galleryID string) ([]domain.ClientImage, error) {
	var images []domain.ClientImage
	err := r.db.WithContext(ctx).
		Where("gallery_id = ?", galleryID).
		Order("order_index ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *clientImageRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.ClientImage{}).Error
}

func (r *clientImageRepository) NextOrderIndex(ctx context.Context, galleryID string) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&domain.ClientImage{}).
		Where("gallery_id = ?", galleryID).
		Select("MAX(order_index)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}
