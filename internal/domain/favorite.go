package domain

import "time"

// GalleryFavorite marks one image as liked by the client of one gallery.
// Unique per (gallery, client email, image); there is no ownership beyond
// that triple.
type GalleryFavorite struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	GalleryID     string    `json:"gallery_id" gorm:"not null;index;uniqueIndex:idx_gallery_client_image"`
	ClientEmail   string    `json:"client_email" gorm:"not null;uniqueIndex:idx_gallery_client_image"`
	ImagePublicID string    `json:"image_public_id" gorm:"not null;uniqueIndex:idx_gallery_client_image"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (GalleryFavorite) TableName() string { return "client_gallery_favorites" }
