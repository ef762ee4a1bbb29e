// Package download bundles gallery originals into ZIP archives streamed to
// the client, with progress pushed over a websocket.
package download

import (
	"archive/zip"
	"compress/flate"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
)

// DefaultCompressionLevel mirrors the flate default used for photo archives;
// JPEGs barely compress, so higher levels only cost CPU.
const DefaultCompressionLevel = 6

// Rough per-photo estimate used for the pre-download size hint.
const avgPhotoBytes = 4 << 20

type ProgressStatus string

const (
	StatusDownloading ProgressStatus = "downloading"
	StatusProcessing  ProgressStatus = "processing"
	StatusComplete    ProgressStatus = "complete"
	StatusError       ProgressStatus = "error"
)

// Progress is one bundling progress event.
type Progress struct {
	Current    int            `json:"current"`
	Total      int            `json:"total"`
	Percentage int            `json:"percentage"`
	Status     ProgressStatus `json:"status"`
	Message    string         `json:"message,omitempty"`
}

// Item is one image to bundle: its stored path and a display title for the
// archive entry name.
type Item struct {
	Path  string
	Title string
}

// Fetcher resolves a stored image path to its original bytes.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (io.ReadCloser, error)
}

type Bundler struct {
	source Fetcher
	level  int
	log    *slog.Logger
}

func NewBundler(source Fetcher, level int, log *slog.Logger) *Bundler {
	if level < flate.NoCompression || level > flate.BestCompression {
		level = DefaultCompressionLevel
	}
	return &Bundler{source: source, level: level, log: log}
}

// Bundle streams a ZIP of the items to w, fetching originals one at a time.
// An image that cannot be fetched is skipped and logged; the archive still
// completes with the rest. Returns the number of skipped images. report may
// be nil.
//
// The fetch loop occupies the first 90 percent of the reported range, the
// final archive flush the rest.
func (b *Bundler) Bundle(ctx context.Context, w io.Writer, items []Item, report func(Progress)) (int, error) {
	if report == nil {
		report = func(Progress) {}
	}
	total := len(items)
	if total == 0 {
		err := fmt.Errorf("nothing to bundle")
		report(Progress{Status: StatusError, Message: "No photos to download"})
		return 0, err
	}

	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, b.level)
	})

	skipped := 0
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			zw.Close()
			report(Progress{Current: i, Total: total, Status: StatusError, Message: "Download cancelled"})
			return skipped, err
		}

		report(Progress{
			Current:    i + 1,
			Total:      total,
			Percentage: (i + 1) * 90 / total,
			Status:     StatusDownloading,
			Message:    fmt.Sprintf("Downloading photo %d of %d", i+1, total),
		})

		if err := b.addEntry(ctx, zw, i, item); err != nil {
			skipped++
			b.log.Warn("skipping image in bundle", "path", item.Path, "error", err)
		}
	}

	if skipped == total {
		zw.Close()
		err := fmt.Errorf("all %d images failed to fetch", total)
		report(Progress{Current: total, Total: total, Status: StatusError, Message: "Could not fetch any photos"})
		return skipped, err
	}

	report(Progress{
		Current:    total,
		Total:      total,
		Percentage: 95,
		Status:     StatusProcessing,
		Message:    "Creating ZIP file...",
	})

	if err := zw.Close(); err != nil {
		report(Progress{Current: total, Total: total, Status: StatusError, Message: "Failed to finish ZIP file"})
		return skipped, fmt.Errorf("closing archive: %w", err)
	}

	msg := fmt.Sprintf("Your photos are ready! %d photos bundled.", total-skipped)
	if skipped > 0 {
		msg = fmt.Sprintf("Your photos are ready! %d photos bundled, %d skipped.", total-skipped, skipped)
	}
	report(Progress{
		Current:    total,
		Total:      total,
		Percentage: 100,
		Status:     StatusComplete,
		Message:    msg,
	})

	return skipped, nil
}

func (b *Bundler) addEntry(ctx context.Context, zw *zip.Writer, index int, item Item) error {
	body, err := b.source.Fetch(ctx, item.Path)
	if err != nil {
		return err
	}
	defer body.Close()

	entry, err := zw.Create(entryName(index, item))
	if err != nil {
		return err
	}
	if _, err := io.Copy(entry, body); err != nil {
		return err
	}
	return nil
}

// entryName renders archive entry names like "0001_first-kiss.jpg" so the
// extracted files sort in gallery order.
func entryName(index int, item Item) string {
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

	return fmt.Sprintf("%04d_%s%s", index+1, stem, ext)
}

// ZipName renders the archive filename for a couple, e.g.
// "jane-john-wedding-photos.zip" or "jane-john-favorites.zip".
func ZipName(coupleName string, favoritesOnly bool) string {
	stem := SanitizeFilename(coupleName)
	if stem == "" {
		stem = "gallery"
	}
	if favoritesOnly {
		return stem + "-favorites.zip"
	}
	return stem + "-wedding-photos.zip"
}

// EstimateSize is the pre-download size hint in bytes.
func EstimateSize(count int) int64 {
	if count < 0 {
		return 0
	}
	return int64(count) * avgPhotoBytes
}
