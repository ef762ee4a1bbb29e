package domain

import "time"

// ShowcaseGallery is a public marketing gallery shown on the website,
// not gated by any access code.
type ShowcaseGallery struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle,omitempty"`
	EventDate  *time.Time `json:"event_date,omitempty"`
	CoverImage string     `json:"cover_image"`
	Images     []string   `json:"images" gorm:"type:json;serializer:json"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (ShowcaseGallery) TableName() string { return "galleries" }
