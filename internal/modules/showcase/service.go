// Package showcase serves the public marketing galleries: curated wedding
// sets visible to everyone, unrelated to the gated client galleries.
package showcase

import (
	"context"

	"github.com/google/uuid"

	"evermore/internal/domain"
	"evermore/internal/pkg/cloudinary"
	"evermore/internal/repository"
)

type Service struct {
	galleries repository.ShowcaseRepository
	urls      *cloudinary.Builder
}

func NewService(galleries repository.ShowcaseRepository, urls *cloudinary.Builder) *Service {
	return &Service{galleries: galleries, urls: urls}
}

func (s *Service) List(ctx context.Context) ([]GalleryView, error) {
	galleries, err := s.galleries.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]GalleryView, 0, len(galleries))
	for i := range galleries {
		views = append(views, s.toView(&galleries[i]))
	}
	return views, nil
}

func (s *Service) Get(ctx context.Context, id string) (*GalleryView, error) {
	gallery, err := s.galleries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.toView(gallery)
	return &view, nil
}

func (s *Service) Create(ctx context.Context, g *domain.ShowcaseGallery) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return s.galleries.Create(ctx, g)
}

func (s *Service) Update(ctx context.Context, g *domain.ShowcaseGallery) error {
	return s.galleries.Update(ctx, g)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.galleries.Delete(ctx, id)
}

func (s *Service) toView(g *domain.ShowcaseGallery) GalleryView {
	images := make([]ImageView, 0, len(g.Images))
	for _, p := range g.Images {
		images = append(images, ImageView{
			ID:           p,
			ThumbnailURL: s.urls.Thumbnail(p),
			FullURL:      s.urls.FullSize(p),
		})
	}

	return GalleryView{
		ID:         g.ID,
		Title:      g.Title,
		Subtitle:   g.Subtitle,
		EventDate:  g.EventDate,
		CoverImage: s.urls.Preview(g.CoverImage),
		Images:     images,
	}
}
