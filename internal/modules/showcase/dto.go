package showcase

import "time"

type ImageView struct {
	ID           string `json:"id"`
	ThumbnailURL string `json:"thumbnail_url"`
	FullURL      string `json:"full_url"`
}

type GalleryView struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Subtitle   string      `json:"subtitle,omitempty"`
	EventDate  *time.Time  `json:"event_date,omitempty"`
	CoverImage string      `json:"cover_image"`
	Images     []ImageView `json:"images"`
}
