package access

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"evermore/internal/domain"
	"evermore/internal/modules/session"
	"evermore/internal/repository"
)

// Service is the gallery access gate: it validates a client-supplied access
// code against the stored gallery record and issues a session.
type Service struct {
	galleries GalleryReader
	limiter   AttemptLimiter
	sessions  SessionIssuer
	log       *slog.Logger
}

type AuthResult struct {
	Gallery *domain.ClientGallery
	Session *session.Session
	Token   string
}

func NewService(galleries GalleryReader, limiter AttemptLimiter, sessions SessionIssuer, log *slog.Logger) *Service {
	return &Service{
		galleries: galleries,
		limiter:   limiter,
		sessions:  sessions,
		log:       log,
	}
}

// Authenticate runs the gate for one {code, email|slug} attempt. clientKey
// identifies the caller for rate limiting.
//
// Failure modes, in order: the limiter refuses locally without touching the
// store; no matching active gallery → ErrInvalidCredentials and one counted
// attempt; matched but past expiration → ErrGalleryExpired (not counted).
// Success resets the counter, bumps the view count in the background and
// creates the session.
func (s *Service) Authenticate(ctx context.Context, req AuthenticateRequest, clientKey string) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	slug := strings.TrimSpace(req.Slug)
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	if email == "" && slug == "" {
		return nil, ErrMissingIdentifier
	}

	if !s.limiter.Allow(clientKey) {
		return nil, ErrRateLimited
	}

	gallery, err := s.galleries.FindActiveByCredentials(ctx, email, slug, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.limiter.Fail(clientKey)
			return nil, ErrInvalidCredentials
		}
		if errors.Is(err, repository.ErrAmbiguousMatch) {
			// Duplicate active rows for one credential pair mean the admin
			// data is broken; never guess which gallery the client meant.
			s.log.Error("ambiguous gallery credentials", "slug", slug, "email", email)
			return nil, err
		}
		return nil, err
	}

	if gallery.IsExpired(time.Now()) {
		return nil, ErrGalleryExpired
	}

	s.limiter.Reset(clientKey)

	// Fire-and-forget: a lost view increment never blocks the login.
	go func(id string) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.galleries.IncrementViewCount(ctx, id, time.Now()); err != nil {
			s.log.Warn("view count increment failed", "gallery_id", id, "error", err)
		}
	}(gallery.ID)

	sess, signed, err := s.sessions.Create(gallery, code)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Gallery: gallery, Session: sess, Token: signed}, nil
}

// RemainingAttempts feeds the login form's attempts-left display.
func (s *Service) RemainingAttempts(clientKey string) int {
	return s.limiter.Remaining(clientKey)
}

// BlockedFor returns the remaining block window for a rate-limited client.
func (s *Service) BlockedFor(clientKey string) time.Duration {
	return s.limiter.BlockedFor(clientKey)
}

// PeekBySlug returns the public preamble of an active gallery (names, cover,
// welcome message) shown on the access form before any code is entered.
func (s *Service) PeekBySlug(ctx context.Context, slug string) (*domain.ClientGallery, error) {
	return s.galleries.GetActiveBySlug(ctx, strings.TrimSpace(slug))
}
