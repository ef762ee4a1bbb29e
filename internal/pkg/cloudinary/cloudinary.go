// Package cloudinary builds delivery URLs for the image CDN. Image paths in
// the database are opaque path-like identifiers; the CDN applies the
// transformation segment baked into the URL.
package cloudinary

import (
	"fmt"
	"strings"
)

type TransformOptions struct {
	Width   int
	Height  int
	Quality string // default "auto"
	Crop    string // default "fill"
	Format  string // default "auto"
}

type Builder struct {
	cloudName string
}

func NewBuilder(cloudName string) *Builder {
	return &Builder{cloudName: cloudName}
}

// URL renders a transformed delivery URL. Absolute URLs pass through
// untouched so galleries may mix CDN paths with externally hosted images.
func (b *Builder) URL(imagePath string, opts TransformOptions) string {
	if imagePath == "" {
		return ""
	}
	if isAbsolute(imagePath) {
		return imagePath
	}

	if opts.Width == 0 {
		opts.Width = 1200
	}
	if opts.Quality == "" {
		opts.Quality = "auto"
	}
	if opts.Crop == "" {
		opts.Crop = "fill"
	}
	if opts.Format == "" {
		opts.Format = "auto"
	}

	parts := []string{
		"q_" + opts.Quality,
		"f_" + opts.Format,
		fmt.Sprintf("w_%d", opts.Width),
	}
	if opts.Height > 0 {
		parts = append(parts, fmt.Sprintf("h_%d", opts.Height))
	}
	parts = append(parts, "c_"+opts.Crop)

	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s/%s",
		b.cloudName, strings.Join(parts, ","), cleanPath(imagePath))
}

// Thumbnail is the 400px grid rendition.
func (b *Builder) Thumbnail(imagePath string) string {
	return b.URL(imagePath, TransformOptions{Width: 400})
}

// Preview is the 800px lightbox-loading rendition.
func (b *Builder) Preview(imagePath string) string {
	return b.URL(imagePath, TransformOptions{Width: 800})
}

// FullSize is the 1600px lightbox rendition (no crop).
func (b *Builder) FullSize(imagePath string) string {
	return b.URL(imagePath, TransformOptions{Width: 1600, Crop: "limit"})
}

// Original is the untransformed asset, used for ZIP bundling.
func (b *Builder) Original(imagePath string) string {
	if imagePath == "" {
		return ""
	}
	if isAbsolute(imagePath) {
		return imagePath
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s",
		b.cloudName, cleanPath(imagePath))
}

func isAbsolute(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// cleanPath strips a leading slash and anything up to and including an
// embedded "image/upload/" segment, so full Cloudinary paths stored by older
// admin tooling stay valid.
func cleanPath(p string) string {
	p = strings.TrimPrefix(p, "/")
	if idx := strings.LastIndex(p, "image/upload/"); idx >= 0 {
		p = p[idx+len("image/upload/"):]
	}
	return p
}
