package gallery

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"sync"

	"github.com/nfnt/resize"

	"evermore/internal/adapter/imagesource"
)

const (
	thumbnailWidth  = 400
	thumbnailQual   = 80
	maxCachedThumbs = 2048
)

// Thumbnailer renders and caches grid thumbnails from original image bytes.
// Used when originals live in the object store and no CDN transformation is
// available for them.
type Thumbnailer struct {
	source imagesource.Source
	log    *slog.Logger

	mu    sync.RWMutex
	cache map[string][]byte
}

func NewThumbnailer(source imagesource.Source, log *slog.Logger) *Thumbnailer {
	return &Thumbnailer{
		source: source,
		log:    log,
		cache:  make(map[string][]byte),
	}
}

// Render returns JPEG thumbnail bytes for the stored image path.
func (t *Thumbnailer) Render(ctx context.Context, path string) ([]byte, error) {
	t.mu.RLock()
	cached, ok := t.cache[path]
	t.mu.RUnlock()
	if ok {
		return cached, nil
	}

	body, err := t.source.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	img, _, err := image.Decode(io.LimitReader(body, 64<<20))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	thumb := resize.Resize(thumbnailWidth, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: thumbnailQual}); err != nil {
		return nil, fmt.Errorf("encoding thumbnail for %s: %w", path, err)
	}

	t.mu.Lock()
	// Crude bound: drop the whole cache when full rather than tracking LRU.
	if len(t.cache) >= maxCachedThumbs {
		t.cache = make(map[string][]byte)
	}
	t.cache[path] = buf.Bytes()
	t.mu.Unlock()

	return buf.Bytes(), nil
}
