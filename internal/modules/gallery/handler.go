package gallery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"evermore/internal/pkg/response"
)

type Handler struct {
	viewer *Viewer
	thumbs *Thumbnailer
}

// NewHandler wires the viewer endpoints. thumbs may be nil when originals are
// served straight from the CDN.
func NewHandler(viewer *Viewer, thumbs *Thumbnailer) *Handler {
	return &Handler{viewer: viewer, thumbs: thumbs}
}

// RegisterRoutes mounts the viewer endpoints on a session-protected group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	galleries := rg.Group("/client/galleries/:id")
	{
		galleries.GET("/images", h.Images)
		galleries.GET("/collections", h.Collections)
		galleries.GET("/thumbnail/*path", h.Thumbnail)
	}
}

// Images returns the gallery grid, optionally narrowed to one collection or
// to the client's favorites.
// @Summary		List gallery images
// @Tags		Client gallery
// @Param		collection	query	string	false	"Collection filter"
// @Param		favorites	query	bool	false	"Only favorited images"
// @Param		sort		query	string	false	"asc or desc"
// @Success		200	{object}	map[string]interface{}
// @Router		/client/galleries/{id}/images [GET]
func (h *Handler) Images(c *gin.Context) {
	opts := ListOptions{
		Collection:    c.Query("collection"),
		FavoritesOnly: c.Query("favorites") == "true",
		Sort:          c.DefaultQuery("sort", "asc"),
	}

	view, err := h.viewer.View(c.Request.Context(), c.Param("id"), c.GetString("client_email"), opts)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GALLERY_FAILED", "Failed to load gallery")
		return
	}

	response.Success(c, http.StatusOK, view)
}

// Collections lists the gallery's collection names.
// @Summary		List gallery collections
// @Tags		Client gallery
// @Router		/client/galleries/{id}/collections [GET]
func (h *Handler) Collections(c *gin.Context) {
	names, err := h.viewer.Collections(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GALLERY_FAILED", "Failed to load collections")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"collections": names})
}

// Thumbnail serves a server-rendered 400px thumbnail for object-store images.
// @Summary		Render an image thumbnail
// @Tags		Client gallery
// @Produce		jpeg
// @Router		/client/galleries/{id}/thumbnail/{path} [GET]
func (h *Handler) Thumbnail(c *gin.Context) {
	if h.thumbs == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Thumbnails are served by the CDN")
		return
	}

	path := c.Param("path")
	if len(path) > 0 && path[0] == '/' {
		path = path[1:]
	}
	if path == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Image path is required")
		return
	}

	data, err := h.thumbs.Render(c.Request.Context(), path)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "THUMBNAIL_FAILED", "Failed to render thumbnail")
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/jpeg", data)
}
