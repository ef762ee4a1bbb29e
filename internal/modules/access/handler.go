package access

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"evermore/internal/pkg/response"
)

// Handler manages the HTTP surface of the access gate.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	galleries := rg.Group("/client/galleries")
	{
		galleries.POST("/authenticate", h.Authenticate)
		galleries.GET("/slug/:slug", h.PeekBySlug)
	}
}

// Authenticate validates an access code and issues a gallery session.
// @Summary		Authenticate a gallery client
// @Description	Validates {code, email|slug} against the stored gallery, applies the advisory rate limit and returns a session token on success.
// @Tags		Client gallery
// @Param		request	body	AuthenticateRequest	true	"Access code plus email or slug"
// @Success		200	{object}	map[string]interface{}	"Gallery, session and token"
// @Failure		401	{object}	map[string]interface{}	"Invalid credentials"
// @Failure		410	{object}	map[string]interface{}	"Gallery expired"
// @Failure		429	{object}	map[string]interface{}	"Too many failed attempts"
// @Router		/client/galleries/authenticate [POST]
func (h *Handler) Authenticate(c *gin.Context) {
	var req AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	clientKey := c.ClientIP()

	result, err := h.service.Authenticate(c.Request.Context(), req, clientKey)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingIdentifier):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Either email or slug must be provided")
		case errors.Is(err, ErrRateLimited):
			minutes := int(math.Ceil(h.service.BlockedFor(clientKey).Minutes()))
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED",
				fmt.Sprintf("Too many failed attempts. Try again in %d minutes.", minutes))
		case errors.Is(err, ErrInvalidCredentials):
			response.ErrorWithDetails(c, http.StatusUnauthorized, "INVALID_CREDENTIALS",
				"Invalid credentials", gin.H{
					"remaining_attempts": h.service.RemainingAttempts(clientKey),
				})
		case errors.Is(err, ErrGalleryExpired):
			response.Error(c, http.StatusGone, "GALLERY_EXPIRED", "Gallery has expired")
		default:
			response.Error(c, http.StatusInternalServerError, "AUTH_FAILED", "Authentication failed")
		}
		return
	}

	response.Success(c, http.StatusOK, AuthenticateResponse{
		Gallery: toGalleryResponse(result.Gallery),
		Token:   result.Token,
		Session: SessionResponse{
			GalleryID:   result.Session.GalleryID,
			GallerySlug: result.Session.GallerySlug,
			ClientEmail: result.Session.ClientEmail,
			AccessedAt:  result.Session.AccessedAt,
			ExpiresAt:   result.Session.ExpiresAt,
		},
	})
}

// PeekBySlug returns the public preamble of an active gallery.
// @Summary		Peek a gallery by slug
// @Description	Returns couple names, cover image and welcome message for the access form. No images, no code required.
// @Tags		Client gallery
// @Param		slug	path	string	true	"Gallery slug"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"No active gallery with this slug"
// @Router		/client/galleries/slug/{slug} [GET]
func (h *Handler) PeekBySlug(c *gin.Context) {
	gallery, err := h.service.PeekBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOOKUP_FAILED", "Failed to load gallery")
		return
	}

	if gallery.IsExpired(time.Now()) {
		response.Error(c, http.StatusGone, "GALLERY_EXPIRED", "Gallery has expired")
		return
	}

	response.Success(c, http.StatusOK, toPeekResponse(gallery))
}
