package domain

import "time"

// AnalyticsSession records one client visit to a gallery. Write-mostly:
// created when the viewer opens, patched with duration and view counts.
type AnalyticsSession struct {
	ID                     string     `json:"id" gorm:"primaryKey;type:uuid"`
	GalleryID              string     `json:"gallery_id" gorm:"index;not null"`
	ClientEmail            string     `json:"client_email"`
	SessionStart           time.Time  `json:"session_start"`
	SessionEnd             *time.Time `json:"session_end,omitempty"`
	SessionDurationSeconds int64      `json:"session_duration_seconds,omitempty"`
	IPAddress              string     `json:"ip_address,omitempty"`
	UserAgent              string     `json:"user_agent,omitempty"`
	ImagesViewed           int        `json:"images_viewed"`
}

func (AnalyticsSession) TableName() string { return "client_gallery_analytics" }
