package domain

import "time"

type DownloadType string

const (
	DownloadSingle       DownloadType = "single"
	DownloadZipAll       DownloadType = "zip_all"
	DownloadZipFavorites DownloadType = "zip_favorites"
)

// DownloadRecord is append-only telemetry: one row per completed download.
type DownloadRecord struct {
	ID           int64        `json:"id" gorm:"primaryKey"`
	GalleryID    string       `json:"gallery_id" gorm:"index;not null"`
	ClientEmail  string       `json:"client_email" gorm:"not null"`
	DownloadType DownloadType `json:"download_type" gorm:"not null"`
	ImageCount   int          `json:"image_count"`
	DownloadedAt time.Time    `json:"downloaded_at"`
	IPAddress    string       `json:"ip_address,omitempty"`
}

func (DownloadRecord) TableName() string { return "client_gallery_downloads" }
