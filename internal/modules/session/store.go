// Package session holds the short-lived record proving a client passed the
// access gate for one gallery. Sessions live server-side in the TTL key-value
// store; the client carries only a signed token referencing them.
package session

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"evermore/internal/domain"
	"evermore/internal/pkg/kvstore"
	"evermore/internal/pkg/token"
)

const DefaultTTL = 2 * time.Hour

type Session struct {
	ID          string    `json:"id"`
	GalleryID   string    `json:"gallery_id"`
	GallerySlug string    `json:"gallery_slug,omitempty"`
	ClientEmail string    `json:"client_email"`
	Code        string    `json:"code"`
	AccessedAt  time.Time `json:"accessed_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Store struct {
	kv     kvstore.Store
	tokens *token.Service
	ttl    time.Duration
	now    func() time.Time
}

func NewStore(kv kvstore.Store, tokens *token.Service, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		kv:     kv,
		tokens: tokens,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Create issues a session for the gallery and returns it with its signed
// token. ExpiresAt is always AccessedAt + the fixed TTL.
func (s *Store) Create(gallery *domain.ClientGallery, code string) (*Session, string, error) {
	now := s.now()
	sess := &Session{
		ID:          uuid.NewString(),
		GalleryID:   gallery.ID,
		GallerySlug: gallery.GallerySlug,
		ClientEmail: gallery.ClientEmail,
		Code:        strings.ToUpper(strings.TrimSpace(code)),
		AccessedAt:  now,
		ExpiresAt:   now.Add(s.ttl),
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, "", err
	}
	s.kv.Set(s.key(sess.ID), raw, s.ttl)

	signed, err := s.tokens.Generate(sess.ID, sess.GalleryID, sess.GallerySlug, sess.ClientEmail)
	if err != nil {
		s.kv.Delete(s.key(sess.ID))
		return nil, "", err
	}

	return sess, signed, nil
}

// Read returns the session or nil. An expired session is never returned; it
// is cleared from the store as a side effect of the read.
func (s *Store) Read(sessionID string) *Session {
	raw, ok := s.kv.Get(s.key(sessionID))
	if !ok {
		return nil
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.kv.Delete(s.key(sessionID))
		return nil
	}

	if !sess.ExpiresAt.After(s.now()) {
		s.kv.Delete(s.key(sessionID))
		return nil
	}

	return &sess
}

// Clear removes the session unconditionally (logout).
func (s *Store) Clear(sessionID string) {
	s.kv.Delete(s.key(sessionID))
}

// Validate parses the signed token and resolves its session. Both checks must
// pass: a valid signature over a cleared or expired session is still absent.
func (s *Store) Validate(signed string) (*Session, error) {
	claims, err := s.tokens.Validate(signed)
	if err != nil {
		return nil, err
	}
	sess := s.Read(claims.SessionID)
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Store) key(sessionID string) string {
	return "client_gallery_session:" + sessionID
}
