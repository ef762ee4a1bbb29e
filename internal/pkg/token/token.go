package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Service signs and validates gallery session tokens. A token proves the
// client passed the access gate for one specific gallery; it carries the
// session id so the server-side session store stays authoritative.
type Service struct {
	secret []byte
	ttl    time.Duration
}

type Claims struct {
	SessionID   string `json:"sid"`
	GalleryID   string `json:"gallery_id"`
	GallerySlug string `json:"gallery_slug,omitempty"`
	ClientEmail string `json:"client_email"`
	jwtlib.RegisteredClaims
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) Generate(sessionID, galleryID, gallerySlug, clientEmail string) (string, error) {
	claims := Claims{
		SessionID:   sessionID,
		GalleryID:   galleryID,
		GallerySlug: gallerySlug,
		ClientEmail: clientEmail,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *Service) Validate(tokenStr string) (*Claims, error) {
	t, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := t.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	return claims, nil
}

func (s *Service) TTL() time.Duration { return s.ttl }
