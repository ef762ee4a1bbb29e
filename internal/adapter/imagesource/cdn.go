package imagesource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"evermore/internal/pkg/cloudinary"
)

// CDNSource fetches originals over HTTP from the image CDN. It is the
// fallback when no object store is configured: galleries reference CDN paths
// and the delivery URL for the untransformed asset is derivable.
type CDNSource struct {
	urls   *cloudinary.Builder
	client *http.Client
}

func NewCDNSource(urls *cloudinary.Builder) *CDNSource {
	return &CDNSource{
		urls: urls,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (s *CDNSource) Fetch(ctx context.Context, path string) (io.ReadCloser, error) {
	url := s.urls.Original(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: unexpected status %d", path, resp.StatusCode)
	}
	return resp.Body, nil
}
