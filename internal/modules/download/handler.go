package download

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"evermore/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterRoutes mounts the download endpoints on a session-protected group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	galleries := rg.Group("/client/galleries/:id/download")
	{
		galleries.POST("", h.Download)
		galleries.GET("/estimate", h.Estimate)
		galleries.GET("/progress", h.Progress)
	}
}

type downloadRequest struct {
	Mode    Mode   `json:"mode"`
	ImageID string `json:"image_id,omitempty"`
}

// Download streams the requested images as a ZIP archive, or a single
// original when mode is "single".
// @Summary		Download gallery images
// @Tags		Client gallery
// @Param		request	body	downloadRequest	true	"all, favorites or single"
// @Produce		application/zip
// @Failure		403	{object}	map[string]interface{}	"Downloads disabled"
// @Router		/client/galleries/{id}/download [POST]
func (h *Handler) Download(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.Mode == "" {
		req.Mode = ModeAll
	}
	if req.Mode == ModeSingle && req.ImageID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "image_id is required for single downloads")
		return
	}

	galleryID := c.Param("id")
	clientEmail := c.GetString("client_email")
	sessionID := c.GetString("session_id")

	job, err := h.service.Prepare(c.Request.Context(), galleryID, clientEmail, req.Mode, req.ImageID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery not found")
		case errors.Is(err, ErrDownloadsDisabled):
			response.Error(c, http.StatusForbidden, "DOWNLOADS_DISABLED", "Downloads are disabled for this gallery")
		case errors.Is(err, ErrNoImages):
			response.Error(c, http.StatusUnprocessableEntity, "NO_IMAGES", "No images to download")
		case errors.Is(err, ErrImageNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Image not found in gallery")
		default:
			response.Error(c, http.StatusInternalServerError, "DOWNLOAD_FAILED", "Failed to prepare download")
		}
		return
	}

	c.Header("Content-Type", ContentTypeFor(job))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, job.Filename))
	c.Status(http.StatusOK)

	// Headers are out; a mid-stream failure can only truncate the body.
	if err := h.service.Run(c.Request.Context(), c.Writer, job, sessionID, clientEmail, c.ClientIP()); err != nil {
		_ = c.Error(err)
	}
}

// Estimate returns the image count and a rough archive size for a mode.
// @Summary		Estimate download size
// @Tags		Client gallery
// @Param		mode	query	string	false	"all or favorites"
// @Router		/client/galleries/{id}/download/estimate [GET]
func (h *Handler) Estimate(c *gin.Context) {
	mode := Mode(c.DefaultQuery("mode", string(ModeAll)))

	count, bytes, err := h.service.Estimate(c.Request.Context(), c.Param("id"), c.GetString("client_email"), mode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "ESTIMATE_FAILED", "Failed to estimate download")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"image_count":     count,
		"estimated_bytes": bytes,
	})
}

// Progress upgrades to a websocket and streams bundling progress events for
// the caller's session.
// @Summary		Download progress stream
// @Tags		Client gallery
// @Router		/client/galleries/{id}/download/progress [GET]
func (h *Handler) Progress(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Session required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(sessionID, conn)

	// Drain the socket; the client never sends anything meaningful, but the
	// read loop notices disconnects.
	go func() {
		defer h.hub.Unregister(sessionID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
