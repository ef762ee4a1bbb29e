package domain

import "time"

type GalleryStatus string

const (
	GalleryActive   GalleryStatus = "active"
	GalleryExpired  GalleryStatus = "expired"
	GalleryArchived GalleryStatus = "archived"
	GalleryDraft    GalleryStatus = "draft"
)

// ClientGallery is a password-protected photo set delivered to one couple.
// Created and mutated by the admin workflow; the client side only reads it,
// except for the view-count / last-accessed side effects.
type ClientGallery struct {
	ID             string        `json:"id" gorm:"primaryKey;type:uuid"`
	ClientEmail    string        `json:"client_email" gorm:"index" validate:"required,email"`
	ClientName     string        `json:"client_name,omitempty"`
	BrideName      string        `json:"bride_name"`
	GroomName      string        `json:"groom_name"`
	WeddingDate    *time.Time    `json:"wedding_date,omitempty"`
	GallerySlug    string        `json:"gallery_slug" gorm:"uniqueIndex"`
	AccessCode     string        `json:"-" gorm:"index"`
	CoverImage     string        `json:"cover_image,omitempty"`
	Images         []string      `json:"images" gorm:"type:json;serializer:json"`
	ExpirationDate time.Time     `json:"expiration_date"`
	Status         GalleryStatus `json:"status" gorm:"index;default:draft"`
	LastAccessedAt *time.Time    `json:"last_accessed_at,omitempty"`
	ViewCount      int64         `json:"view_count"`
	AllowDownloads bool          `json:"allow_downloads"`
	WelcomeMessage string        `json:"welcome_message,omitempty"`
	AdminNotes     string        `json:"-"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (ClientGallery) TableName() string { return "client_galleries" }

// CoupleName renders the display name used for ZIP filenames and headings.
func (g *ClientGallery) CoupleName() string {
	if g.ClientName != "" {
		return g.ClientName
	}
	return g.BrideName + " & " + g.GroomName
}

// IsExpired reports whether the gallery's expiration date has passed.
// A zero expiration date means the gallery never expires.
func (g *ClientGallery) IsExpired(now time.Time) bool {
	if g.ExpirationDate.IsZero() {
		return false
	}
	return g.ExpirationDate.Before(now)
}

// ClientImage is the normalized per-image row: one gallery image with its
// ordering index and optional title/thumbnail overrides. Galleries created
// before normalization carry only the embedded ClientGallery.Images paths.
type ClientImage struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	GalleryID    string    `json:"gallery_id" gorm:"index;not null"`
	ImageURL     string    `json:"image_url" gorm:"not null"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Title        string    `json:"title,omitempty"`
	OrderIndex   int       `json:"order_index" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ClientImage) TableName() string { return "client_images" }
