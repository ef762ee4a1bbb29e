// Package imagesource abstracts where original image bytes live. Galleries
// reference images by opaque paths; a Source resolves a path to its bytes,
// whether they sit in an S3 bucket or behind the CDN.
package imagesource

import (
	"context"
	"io"
)

// Source fetches original image bytes by their stored path.
type Source interface {
	Fetch(ctx context.Context, path string) (io.ReadCloser, error)
}
