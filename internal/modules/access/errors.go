package access

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGalleryExpired     = errors.New("gallery has expired")
	ErrRateLimited        = errors.New("too many failed attempts")
	ErrMissingIdentifier  = errors.New("either email or slug must be provided")
)
