package gallery

import (
	"context"

	"evermore/internal/domain"
)

// GalleryGetter loads a gallery record by id.
type GalleryGetter interface {
	GetByID(ctx context.Context, id string) (*domain.ClientGallery, error)
}

// ImageLister returns the normalized per-image rows for a gallery.
type ImageLister interface {
	GetByGalleryID(ctx context.Context, galleryID string) ([]domain.ClientImage, error)
}

// FavoriteLister exposes the client's favorited image ids.
type FavoriteLister interface {
	List(ctx context.Context, galleryID, clientEmail string) ([]string, error)
}
