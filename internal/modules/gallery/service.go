// Package gallery renders the authenticated gallery view: the image grid
// with its renditions, collection filters, favorite state and the expiration
// countdown.
package gallery

import (
	"context"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"evermore/internal/domain"
	"evermore/internal/pkg/cloudinary"
)

type Viewer struct {
	galleries GalleryGetter
	images    ImageLister
	favorites FavoriteLister
	urls      *cloudinary.Builder
	log       *slog.Logger
}

func NewViewer(galleries GalleryGetter, images ImageLister, favorites FavoriteLister, urls *cloudinary.Builder, log *slog.Logger) *Viewer {
	return &Viewer{
		galleries: galleries,
		images:    images,
		favorites: favorites,
		urls:      urls,
		log:       log,
	}
}

// View assembles the gallery page for one authenticated client.
func (v *Viewer) View(ctx context.Context, galleryID, clientEmail string, opts ListOptions) (*GalleryView, error) {
	gallery, err := v.galleries.GetByID(ctx, galleryID)
	if err != nil {
		return nil, err
	}

	entries := v.imageEntries(ctx, gallery)
	collections := collectionsOf(entries)

	favIDs, err := v.favorites.List(ctx, galleryID, clientEmail)
	if err != nil {
		return nil, err
	}
	favSet := make(map[string]struct{}, len(favIDs))
	for _, id := range favIDs {
		favSet[id] = struct{}{}
	}

	if opts.Collection != "" {
		entries = filterEntries(entries, func(e imageEntry) bool {
			return e.collection == opts.Collection
		})
	}
	if opts.FavoritesOnly {
		entries = filterEntries(entries, func(e imageEntry) bool {
			_, ok := favSet[e.path]
			return ok
		})
	}

	sortEntries(entries, opts.Sort)

	views := make([]ImageView, 0, len(entries))
	for _, e := range entries {
		_, fav := favSet[e.path]
		views = append(views, ImageView{
			ID:           e.path,
			Title:        e.title,
			Collection:   e.collection,
			ThumbnailURL: v.urls.Thumbnail(e.path),
			PreviewURL:   v.urls.Preview(e.path),
			FullURL:      v.urls.FullSize(e.path),
			OriginalURL:  v.urls.Original(e.path),
			IsFavorite:   fav,
		})
	}

	return &GalleryView{
		GalleryID:      gallery.ID,
		ClientName:     gallery.CoupleName(),
		WelcomeMessage: gallery.WelcomeMessage,
		AllowDownloads: gallery.AllowDownloads,
		Images:         views,
		Collections:    collections,
		FavoriteCount:  len(favIDs),
		Expiration:     Expiration(gallery.ExpirationDate, time.Now()),
	}, nil
}

// Collections lists the distinct collection names of a gallery, sorted.
func (v *Viewer) Collections(ctx context.Context, galleryID string) ([]string, error) {
	gallery, err := v.galleries.GetByID(ctx, galleryID)
	if err != nil {
		return nil, err
	}
	return collectionsOf(v.imageEntries(ctx, gallery)), nil
}

type imageEntry struct {
	path       string
	title      string
	collection string
}

// imageEntries prefers the normalized per-image rows and falls back to the
// paths embedded in the gallery record for galleries created before
// normalization. A failed row lookup degrades to the embedded paths too.
func (v *Viewer) imageEntries(ctx context.Context, gallery *domain.ClientGallery) []imageEntry {
	rows, err := v.images.GetByGalleryID(ctx, gallery.ID)
	if err != nil {
		v.log.Warn("image row lookup failed", "gallery_id", gallery.ID, "error", err)
		rows = nil
	}

	if len(rows) > 0 {
		entries := make([]imageEntry, 0, len(rows))
		for _, r := range rows {
			entries = append(entries, imageEntry{
				path:       r.ImageURL,
				title:      r.Title,
				collection: collectionOf(r.ImageURL),
			})
		}
		return entries
	}

	entries := make([]imageEntry, 0, len(gallery.Images))
	for _, p := range gallery.Images {
		entries = append(entries, imageEntry{
			path:       p,
			title:      titleFromPath(p),
			collection: collectionOf(p),
		})
	}
	return entries
}

// Pathless images fall into this collection so the filter still covers them.
const defaultCollection = "highlights"

// collectionOf derives the collection from the folder directly containing
// the file, so nested storage prefixes don't collapse every image into one
// collection.
func collectionOf(p string) string {
	dir := path.Dir(strings.TrimPrefix(p, "/"))
	if dir == "." || dir == "/" || dir == "" {
		return defaultCollection
	}
	return path.Base(dir)
}

func titleFromPath(p string) string {
	base := path.Base(p)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base
}

func collectionsOf(entries []imageEntry) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, e := range entries {
		if e.collection == "" {
			continue
		}
		if _, ok := seen[e.collection]; ok {
			continue
		}
		seen[e.collection] = struct{}{}
		names = append(names, e.collection)
	}
	sort.Strings(names)
	return names
}

func filterEntries(entries []imageEntry, keep func(imageEntry) bool) []imageEntry {
	out := entries[:0:0]
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func sortEntries(entries []imageEntry, order string) {
	desc := strings.EqualFold(order, "desc")
	sort.SliceStable(entries, func(i, j int) bool {
		if desc {
			return entries[i].path > entries[j].path
		}
		return entries[i].path < entries[j].path
	})
}
