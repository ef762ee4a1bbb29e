// Package admin is the photographer-facing management surface: client
// gallery lifecycle, showcase curation, inbox and telemetry views.
package admin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"evermore/internal/domain"
	"evermore/internal/repository"
)

var ErrInvalidPassword = errors.New("invalid admin password")

// ImageUploader stores an original image and returns its stored path. nil
// when no object store is configured.
type ImageUploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	galleries repository.ClientGalleryRepository
	images    repository.ClientImageRepository
	downloads repository.DownloadRepository
	analytics repository.AnalyticsRepository
	uploader  ImageUploader

	adminToken        string
	adminPasswordHash string
	log               *slog.Logger
}

func NewService(
	galleries repository.ClientGalleryRepository,
	images repository.ClientImageRepository,
	downloads repository.DownloadRepository,
	analytics repository.AnalyticsRepository,
	uploader ImageUploader,
	adminToken, adminPasswordHash string,
	log *slog.Logger,
) *Service {
	return &Service{
		galleries:         galleries,
		images:            images,
		downloads:         downloads,
		analytics:         analytics,
		uploader:          uploader,
		adminToken:        adminToken,
		adminPasswordHash: adminPasswordHash,
		log:               log,
	}
}

// Login exchanges the admin password for the API token. Only available when
// a password hash is configured; token-only deployments skip this entirely.
func (s *Service) Login(password string) (string, error) {
	if s.adminPasswordHash == "" {
		return "", ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}
	return s.adminToken, nil
}

// CreateGallery creates a client gallery with a generated access code. The
// slug is derived from the couple's names when not provided.
func (s *Service) CreateGallery(ctx context.Context, req CreateGalleryRequest) (*domain.ClientGallery, error) {
	code, err := GenerateAccessCode()
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.GallerySlug)
	if slug == "" {
		slug = slugify(req.BrideName + " " + req.GroomName + " wedding")
	}

	allowDownloads := true
	if req.AllowDownloads != nil {
		allowDownloads = *req.AllowDownloads
	}

	gallery := &domain.ClientGallery{
		ID:             uuid.NewString(),
		ClientEmail:    strings.ToLower(strings.TrimSpace(req.ClientEmail)),
		ClientName:     strings.TrimSpace(req.ClientName),
		BrideName:      strings.TrimSpace(req.BrideName),
		GroomName:      strings.TrimSpace(req.GroomName),
		WeddingDate:    req.WeddingDate,
		GallerySlug:    slug,
		AccessCode:     code,
		CoverImage:     req.CoverImage,
		Images:         req.Images,
		ExpirationDate: req.ExpirationDate,
		Status:         domain.GalleryDraft,
		AllowDownloads: allowDownloads,
		WelcomeMessage: req.WelcomeMessage,
		AdminNotes:     req.AdminNotes,
	}

	if err := s.galleries.Create(ctx, gallery); err != nil {
		return nil, err
	}

	s.log.Info("client gallery created", "gallery_id", gallery.ID, "slug", gallery.GallerySlug)
	return gallery, nil
}

// UpdateGallery applies a partial update. Only fields present in the request
// change.
func (s *Service) UpdateGallery(ctx context.Context, id string, req UpdateGalleryRequest) (*domain.ClientGallery, error) {
	gallery, err := s.galleries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClientEmail != nil {
		gallery.ClientEmail = strings.ToLower(strings.TrimSpace(*req.ClientEmail))
	}
	if req.ClientName != nil {
		gallery.ClientName = strings.TrimSpace(*req.ClientName)
	}
	if req.BrideName != nil {
		gallery.BrideName = strings.TrimSpace(*req.BrideName)
	}
	if req.GroomName != nil {
		gallery.GroomName = strings.TrimSpace(*req.GroomName)
	}
	if req.WeddingDate != nil {
		gallery.WeddingDate = req.WeddingDate
	}
	if req.CoverImage != nil {
		gallery.CoverImage = *req.CoverImage
	}
	if req.Images != nil {
		gallery.Images = *req.Images
	}
	if req.ExpirationDate != nil {
		gallery.ExpirationDate = *req.ExpirationDate
	}
	if req.Status != nil {
		gallery.Status = domain.GalleryStatus(*req.Status)
	}
	if req.AllowDownloads != nil {
		gallery.AllowDownloads = *req.AllowDownloads
	}
	if req.WelcomeMessage != nil {
		gallery.WelcomeMessage = *req.WelcomeMessage
	}
	if req.AdminNotes != nil {
		gallery.AdminNotes = *req.AdminNotes
	}

	if err := s.galleries.Update(ctx, gallery); err != nil {
		return nil, err
	}
	return gallery, nil
}

// RegenerateAccessCode replaces a gallery's access code, invalidating the
// old one immediately.
func (s *Service) RegenerateAccessCode(ctx context.Context, id string) (*domain.ClientGallery, error) {
	gallery, err := s.galleries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	code, err := GenerateAccessCode()
	if err != nil {
		return nil, err
	}
	gallery.AccessCode = code

	if err := s.galleries.Update(ctx, gallery); err != nil {
		return nil, err
	}

	s.log.Info("access code regenerated", "gallery_id", gallery.ID)
	return gallery, nil
}

func (s *Service) GetGallery(ctx context.Context, id string) (*domain.ClientGallery, error) {
	return s.galleries.GetByID(ctx, id)
}

func (s *Service) ListGalleries(ctx context.Context, limit, offset int) ([]domain.ClientGallery, int64, error) {
	return s.galleries.List(ctx, limit, offset)
}

func (s *Service) DeleteGallery(ctx context.Context, id string) error {
	return s.galleries.Delete(ctx, id)
}

// UploadImage stores an original in the object store under the gallery's
// prefix and appends a normalized image row.
func (s *Service) UploadImage(ctx context.Context, galleryID, filename, title, contentType string, body io.Reader) (*domain.ClientImage, error) {
	if s.uploader == nil {
		return nil, fmt.Errorf("no object store configured for uploads")
	}

	if _, err := s.galleries.GetByID(ctx, galleryID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("galleries/%s/%s", galleryID, slugifyFilename(filename))
	path, err := s.uploader.Upload(ctx, key, body, contentType)
	if err != nil {
		return nil, err
	}

	order, err := s.images.NextOrderIndex(ctx, galleryID)
	if err != nil {
		return nil, err
	}

	img := &domain.ClientImage{
		ID:         uuid.NewString(),
		GalleryID:  galleryID,
		ImageURL:   path,
		Title:      strings.TrimSpace(title),
		OrderIndex: order,
	}
	if err := s.images.Create(ctx, img); err != nil {
		return nil, err
	}

	return img, nil
}

func (s *Service) DeleteImage(ctx context.Context, imageID string) error {
	return s.images.Delete(ctx, imageID)
}

func (s *Service) ListDownloads(ctx context.Context, galleryID string) ([]domain.DownloadRecord, error) {
	return s.downloads.ListByGallery(ctx, galleryID)
}

func (s *Service) ListAnalytics(ctx context.Context, galleryID string) ([]domain.AnalyticsSession, error) {
	return s.analytics.ListByGallery(ctx, galleryID)
}

// slugify lowercases and hyphenates a display string for use in URLs.
func slugify(name string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// slugifyFilename keeps the extension while slugifying the stem.
func slugifyFilename(filename string) string {
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		ext = strings.ToLower(filename[idx:])
		filename = filename[:idx]
	}
	stem := slugify(filename)
	if stem == "" {
		stem = uuid.NewString()
	}
	return stem + ext
}
