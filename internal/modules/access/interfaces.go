package access

import (
	"context"
	"time"

	"evermore/internal/domain"
	"evermore/internal/modules/session"
)

// GalleryReader is the slice of the gallery repository the gate uses.
type GalleryReader interface {
	FindActiveByCredentials(ctx context.Context, email, slug, code string) (*domain.ClientGallery, error)
	GetActiveBySlug(ctx context.Context, slug string) (*domain.ClientGallery, error)
	IncrementViewCount(ctx context.Context, id string, accessedAt time.Time) error
}

// AttemptLimiter is the advisory failed-login limiter keyed per client.
type AttemptLimiter interface {
	Allow(key string) bool
	Fail(key string) int
	Reset(key string)
	Remaining(key string) int
	BlockedFor(key string) time.Duration
}

// SessionIssuer creates the gallery session on a successful gate pass.
type SessionIssuer interface {
	Create(gallery *domain.ClientGallery, code string) (*session.Session, string, error)
}
