package download

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"
	"time"

	"evermore/internal/domain"
	"evermore/internal/repository"
)

type Mode string

const (
	ModeAll       Mode = "all"
	ModeFavorites Mode = "favorites"
	ModeSingle    Mode = "single"
)

// GalleryGetter loads the gallery being downloaded from.
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

// Job is a prepared download: everything the handler needs to set response
// headers before the first byte is streamed.
type Job struct {
	Gallery  *domain.ClientGallery
	Items    []Item
	Filename string
	Type     domain.DownloadType
}

type Service struct {
	galleries GalleryGetter
	images    ImageLister
	favorites FavoriteLister
	bundler   *Bundler
	hub       *Hub
	records   repository.DownloadRepository
	log       *slog.Logger
}

func NewService(galleries GalleryGetter, images ImageLister, favorites FavoriteLister,
	bundler *Bundler, hub *Hub, records repository.DownloadRepository, log *slog.Logger) *Service {
	return &Service{
		galleries: galleries,
		images:    images,
		favorites: favorites,
		bundler:   bundler,
		hub:       hub,
		records:   records,
		log:       log,
	}
}

// Prepare resolves the item list and archive filename for a download request.
func (s *Service) Prepare(ctx context.Context, galleryID, clientEmail string, mode Mode, imageID string) (*Job, error) {
	gallery, err := s.galleries.GetByID(ctx, galleryID)
	if err != nil {
		return nil, err
	}
	if !gallery.AllowDownloads {
		return nil, ErrDownloadsDisabled
	}

	items := s.galleryItems(ctx, gallery)
	if len(items) == 0 {
		return nil, ErrNoImages
	}

	switch mode {
	case ModeSingle:
		for _, item := range items {
			if item.Path == imageID {
				return &Job{
					Gallery:  gallery,
					Items:    []Item{item},
					Filename: singleFilename(item),
					Type:     domain.DownloadSingle,
				}, nil
			}
		}
		return nil, ErrImageNotFound

	case ModeFavorites:
		favIDs, err := s.favorites.List(ctx, galleryID, clientEmail)
		if err != nil {
			return nil, err
		}
		favSet := make(map[string]struct{}, len(favIDs))
		for _, id := range favIDs {
			favSet[id] = struct{}{}
		}
		var kept []Item
		for _, item := range items {
			if _, ok := favSet[item.Path]; ok {
				kept = append(kept, item)
			}
		}
		if len(kept) == 0 {
			return nil, ErrNoImages
		}
		return &Job{
			Gallery:  gallery,
			Items:    kept,
			Filename: ZipName(gallery.CoupleName(), true),
			Type:     domain.DownloadZipFavorites,
		}, nil

	default:
		return &Job{
			Gallery:  gallery,
			Items:    items,
			Filename: ZipName(gallery.CoupleName(), false),
			Type:     domain.DownloadZipAll,
		}, nil
	}
}

// Run streams the prepared download to w. ZIP jobs report progress through
// the hub keyed by session id; a completed job is recorded for telemetry in
// the background.
func (s *Service) Run(ctx context.Context, w io.Writer, job *Job, sessionID, clientEmail, clientIP string) error {
	var err error
	var bundled int

	if job.Type == domain.DownloadSingle {
		err = s.streamSingle(ctx, w, job.Items[0])
		bundled = 1
	} else {
		var skipped int
		skipped, err = s.bundler.Bundle(ctx, w, job.Items, func(p Progress) {
			s.hub.Send(sessionID, p)
		})
		bundled = len(job.Items) - skipped
	}
	if err != nil {
		return err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rec := &domain.DownloadRecord{
			GalleryID:    job.Gallery.ID,
			ClientEmail:  clientEmail,
			DownloadType: job.Type,
			ImageCount:   bundled,
			IPAddress:    clientIP,
		}
		if err := s.records.Record(ctx, rec); err != nil {
			s.log.Warn("download record failed", "gallery_id", job.Gallery.ID, "error", err)
		}
	}()

	return nil
}

// Estimate returns the pre-download size hint for a mode.
func (s *Service) Estimate(ctx context.Context, galleryID, clientEmail string, mode Mode) (count int, bytes int64, err error) {
	gallery, err := s.galleries.GetByID(ctx, galleryID)
	if err != nil {
		return 0, 0, err
	}

	if mode == ModeFavorites {
		favIDs, err := s.favorites.List(ctx, galleryID, clientEmail)
		if err != nil {
			return 0, 0, err
		}
		count = len(favIDs)
	} else {
		count = len(s.galleryItems(ctx, gallery))
	}

	return count, EstimateSize(count), nil
}

func (s *Service) streamSingle(ctx context.Context, w io.Writer, item Item) error {
	body, err := s.bundler.source.Fetch(ctx, item.Path)
	if err != nil {
		return err
	}
	defer body.Close()
	_, err = io.Copy(w, body)
	return err
}

// galleryItems prefers the normalized per-image rows and falls back to the
// embedded image paths.
func (s *Service) galleryItems(ctx context.Context, gallery *domain.ClientGallery) []Item {
	rows, err := s.images.GetByGalleryID(ctx, gallery.ID)
	if err != nil {
		s.log.Warn("image row lookup failed", "gallery_id", gallery.ID, "error", err)
		rows = nil
	}

	if len(rows) > 0 {
		items := make([]Item, 0, len(rows))
		for _, r := range rows {
			items = append(items, Item{Path: r.ImageURL, Title: r.Title})
		}
		return items
	}

	items := make([]Item, 0, len(gallery.Images))
	for _, p := range gallery.Images {
		items = append(items, Item{Path: p})
	}
	return items
}

func singleFilename(item Item) string {
	title := item.Title
	if title == "" {
		title = path.Base(item.Path)
	}
	if idx := strings.LastIndex(title, "."); idx > 0 {
		title = title[:idx]
	}
	stem := SanitizeFilename(title)
	if stem == "" {
		stem = "photo"
	}
	ext := strings.ToLower(path.Ext(item.Path))
	if ext == "" {
		ext = ".jpg"
	}
	return stem + ext
}

// ContentTypeFor returns the response content type for a job.
func ContentTypeFor(job *Job) string {
	if job.Type != domain.DownloadSingle {
		return "application/zip"
	}
	if ct := mime.TypeByExtension(path.Ext(job.Filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
