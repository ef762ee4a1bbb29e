package gallery

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evermore/internal/domain"
	"evermore/internal/pkg/cloudinary"
)

type stubGalleries struct {
	gallery *domain.ClientGallery
}

func (s *stubGalleries) GetByID(_ context.Context, id string) (*domain.ClientGallery, error) {
	return s.gallery, nil
}

type stubImages struct {
	rows []domain.ClientImage
}

func (s *stubImages) GetByGalleryID(_ context.Context, _ string) ([]domain.ClientImage, error) {
	return s.rows, nil
}

type stubFavorites struct {
	ids []string
}

func (s *stubFavorites) List(_ context.Context, _, _ string) ([]string, error) {
	return s.ids, nil
}

func newTestViewer(gallery *domain.ClientGallery, favorites []string) *Viewer {
	return NewViewer(
		&stubGalleries{gallery: gallery},
		&stubImages{},
		&stubFavorites{ids: favorites},
		cloudinary.NewBuilder("demo"),
		slog.Default(),
	)
}

func testGallery() *domain.ClientGallery {
	return &domain.ClientGallery{
		ID:          "g-1",
		BrideName:   "Jane",
		GroomName:   "John",
		ClientEmail: "jane@example.com",
		Images: []string{
			"ceremony/first-kiss",
			"reception/cake-cutting",
			"ceremony/vows",
			"portraits/golden-hour",
		},
		ExpirationDate: time.Now().Add(60 * 24 * time.Hour),
		AllowDownloads: true,
		Status:         domain.GalleryActive,
	}
}

func TestView_SortsAscendingByDefault(t *testing.T) {
	v := newTestViewer(testGallery(), nil)

	view, err := v.View(context.Background(), "g-1", "jane@example.com", ListOptions{})
	require.NoError(t, err)
	require.Len(t, view.Images, 4)

	assert.Equal(t, "ceremony/first-kiss", view.Images[0].ID)
	assert.Equal(t, "ceremony/vows", view.Images[1].ID)
	assert.Equal(t, "portraits/golden-hour", view.Images[2].ID)
	assert.Equal(t, "reception/cake-cutting", view.Images[3].ID)
}

func TestView_SortDescending(t *testing.T) {
	v := newTestViewer(testGallery(), nil)

	view, err := v.View(context.Background(), "g-1", "jane@example.com", ListOptions{Sort: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "reception/cake-cutting", view.Images[0].ID)
	assert.Equal(t, "ceremony/first-kiss", view.Images[3].ID)
}

func TestView_CollectionFilter(t *testing.T) {
	v := newTestViewer(testGallery(), nil)

	view, err := v.View(context.Background(), "g-1", "jane@example.com", ListOptions{Collection: "ceremony"})
	require.NoError(t, err)
	require.Len(t, view.Images, 2)
	for _, img := range view.Images {
		assert.Equal(t, "ceremony", img.Collection)
	}
}

func TestView_FavoritesOnly(t *testing.T) {
	v := newTestViewer(testGallery(), []string{"ceremony/vows", "portraits/golden-hour"})

	view, err := v.View(context.Background(), "g-1", "jane@example.com", ListOptions{FavoritesOnly: true})
	require.NoError(t, err)
	require.Len(t, view.Images, 2)
	assert.Equal(t, "ceremony/vows", view.Images[0].ID)
	assert.True(t, view.Images[0].IsFavorite)
	assert.Equal(t, 2, view.FavoriteCount)
}

func TestView_RenditionURLs(t *testing.T) {
	v := newTestViewer(testGallery(), nil)

	view, err := v.View(context.Background(), "g-1", "jane@example.com", ListOptions{})
	require.NoError(t, err)

	img := view.Images[0]
	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/q_auto,f_auto,w_400,c_fill/ceremony/first-kiss",
		img.ThumbnailURL)
	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/ceremony/first-kiss",
		img.OriginalURL)
	assert.Contains(t, img.FullURL, "w_1600")
	assert.Contains(t, img.FullURL, "c_limit")
}

func TestView_NormalizedRowsTakePriority(t *testing.T) {
	gallery := testGallery()
	v := NewViewer(
		&stubGalleries{gallery: gallery},
		&stubImages{rows: []domain.ClientImage{
			{GalleryID: "g-1", ImageURL: "curated/opener", Title: "The Opener", OrderIndex: 0},
		}},
		&stubFavorites{},
		cloudinary.NewBuilder("demo"),
		slog.Default(),
	)

	view, err := v.View(context.Background(), "g-1", "jane@example.com", ListOptions{})
	require.NoError(t, err)
	require.Len(t, view.Images, 1)
	assert.Equal(t, "curated/opener", view.Images[0].ID)
	assert.Equal(t, "The Opener", view.Images[0].Title)
}

func TestCollectionOf_UsesContainingFolder(t *testing.T) {
	cases := map[string]string{
		"weddings/demo/ceremony/first-kiss.jpg": "ceremony",
		"weddings/demo/reception/cake.jpg":      "reception",
		"ceremony/vows":                         "ceremony",
		"/portraits/golden-hour.jpg":            "portraits",
		"first-kiss.jpg":                        "highlights",
	}
	for p, want := range cases {
		assert.Equal(t, want, collectionOf(p), "path %q", p)
	}
}

func TestCollections_NestedPaths(t *testing.T) {
	gallery := testGallery()
	gallery.Images = []string{
		"weddings/demo/ceremony/first-kiss.jpg",
		"weddings/demo/ceremony/vows.jpg",
		"weddings/demo/reception/cake.jpg",
		"loose-shot.jpg",
	}
	v := newTestViewer(gallery, nil)

	names, err := v.Collections(context.Background(), "g-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ceremony", "highlights", "reception"}, names)
}

func TestCollections(t *testing.T) {
	v := newTestViewer(testGallery(), nil)

	names, err := v.Collections(context.Background(), "g-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ceremony", "portraits", "reception"}, names)
}

func TestView_CoupleNameAndDownloads(t *testing.T) {
	v := newTestViewer(testGallery(), nil)

	view, err := v.View(context.Background(), "g-1", "jane@example.com", ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Jane & John", view.ClientName)
	assert.True(t, view.AllowDownloads)
	assert.False(t, view.Expiration.ExpiringSoon)
}
