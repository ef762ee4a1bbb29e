package access

import (
	"time"

	"evermore/internal/domain"
)

// AuthenticateRequest carries the access code plus exactly one of email/slug.
// The code arrives in the POST body, never in the URL.
type AuthenticateRequest struct {
	Code  string `json:"code" binding:"required"`
	Email string `json:"email,omitempty"`
	Slug  string `json:"slug,omitempty"`
}

type GalleryResponse struct {
	ID             string     `json:"id"`
	GallerySlug    string     `json:"gallery_slug"`
	ClientName     string     `json:"client_name"`
	BrideName      string     `json:"bride_name"`
	GroomName      string     `json:"groom_name"`
	WeddingDate    *time.Time `json:"wedding_date,omitempty"`
	CoverImage     string     `json:"cover_image,omitempty"`
	Images         []string   `json:"images"`
	ExpirationDate time.Time  `json:"expiration_date"`
	AllowDownloads bool       `json:"allow_downloads"`
	WelcomeMessage string     `json:"welcome_message,omitempty"`
}

type AuthenticateResponse struct {
	Gallery GalleryResponse `json:"gallery"`
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

type SessionResponse struct {
	GalleryID   string    `json:"gallery_id"`
	GallerySlug string    `json:"gallery_slug,omitempty"`
	ClientEmail string    `json:"client_email"`
	AccessedAt  time.Time `json:"accessed_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// GalleryPeekResponse is the pre-auth preamble: no images, no client email.
type GalleryPeekResponse struct {
	ID             string     `json:"id"`
	GallerySlug    string     `json:"gallery_slug"`
	ClientName     string     `json:"client_name"`
	BrideName      string     `json:"bride_name"`
	GroomName      string     `json:"groom_name"`
	WeddingDate    *time.Time `json:"wedding_date,omitempty"`
	CoverImage     string     `json:"cover_image,omitempty"`
	WelcomeMessage string     `json:"welcome_message,omitempty"`
}

func toGalleryResponse(g *domain.ClientGallery) GalleryResponse {
	return GalleryResponse{
		ID:             g.ID,
		GallerySlug:    g.GallerySlug,
		ClientName:     g.CoupleName(),
		BrideName:      g.BrideName,
		GroomName:      g.GroomName,
		WeddingDate:    g.WeddingDate,
		CoverImage:     g.CoverImage,
		Images:         g.Images,
		ExpirationDate: g.ExpirationDate,
		AllowDownloads: g.AllowDownloads,
		WelcomeMessage: g.WelcomeMessage,
	}
}

func toPeekResponse(g *domain.ClientGallery) GalleryPeekResponse {
	return GalleryPeekResponse{
		ID:             g.ID,
		GallerySlug:    g.GallerySlug,
		ClientName:     g.CoupleName(),
		BrideName:      g.BrideName,
		GroomName:      g.GroomName,
		WeddingDate:    g.WeddingDate,
		CoverImage:     g.CoverImage,
		WelcomeMessage: g.WelcomeMessage,
	}
}
