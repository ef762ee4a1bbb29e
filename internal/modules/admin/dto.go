package admin

import "time"

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type CreateGalleryRequest struct {
	ClientEmail    string     `json:"client_email" validate:"required,email"`
	ClientName     string     `json:"client_name,omitempty"`
	BrideName      string     `json:"bride_name" validate:"required"`
	GroomName      string     `json:"groom_name" validate:"required"`
	WeddingDate    *time.Time `json:"wedding_date,omitempty"`
	GallerySlug    string     `json:"gallery_slug,omitempty"`
	CoverImage     string     `json:"cover_image,omitempty"`
	Images         []string   `json:"images,omitempty"`
	ExpirationDate time.Time  `json:"expiration_date" validate:"required"`
	AllowDownloads *bool      `json:"allow_downloads,omitempty"`
	WelcomeMessage string     `json:"welcome_message,omitempty"`
	AdminNotes     string     `json:"admin_notes,omitempty"`
}

type UpdateGalleryRequest struct {
	ClientEmail    *string    `json:"client_email,omitempty"`
	ClientName     *string    `json:"client_name,omitempty"`
	BrideName      *string    `json:"bride_name,omitempty"`
	GroomName      *string    `json:"groom_name,omitempty"`
	WeddingDate    *time.Time `json:"wedding_date,omitempty"`
	CoverImage     *string    `json:"cover_image,omitempty"`
	Images         *[]string  `json:"images,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Status         *string    `json:"status,omitempty"`
	AllowDownloads *bool      `json:"allow_downloads,omitempty"`
	WelcomeMessage *string    `json:"welcome_message,omitempty"`
	AdminNotes     *string    `json:"admin_notes,omitempty"`
}

type ShowcaseRequest struct {
	Title      string     `json:"title" binding:"required"`
	Subtitle   string     `json:"subtitle,omitempty"`
	EventDate  *time.Time `json:"event_date,omitempty"`
	CoverImage string     `json:"cover_image" binding:"required"`
	Images     []string   `json:"images,omitempty"`
}
