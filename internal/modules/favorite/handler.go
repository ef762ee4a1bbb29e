package favorite

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evermore/internal/pkg/response"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// RegisterRoutes mounts the favorite endpoints on a session-protected group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	galleries := rg.Group("/client/galleries/:id")
	{
		galleries.GET("/favorites", h.List)
		galleries.POST("/favorites/toggle", h.Toggle)
	}
}

type toggleRequest struct {
	ImageID string `json:"image_id" binding:"required"`
}

// List returns the session client's favorited image ids for the gallery.
// @Summary		List favorites
// @Tags		Client gallery
// @Success		200	{object}	map[string]interface{}
// @Router		/client/galleries/{id}/favorites [GET]
func (h *Handler) List(c *gin.Context) {
	galleryID := c.Param("id")
	clientEmail := c.GetString("client_email")

	ids, err := h.manager.List(c.Request.Context(), galleryID, clientEmail)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FAVORITES_FAILED", "Failed to load favorites")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"image_ids": ids,
		"count":     len(ids),
	})
}

// Toggle flips the favorite state of one image.
// @Summary		Toggle a favorite
// @Tags		Client gallery
// @Param		request	body	toggleRequest	true	"Image to toggle"
// @Success		200	{object}	map[string]interface{}	"New favorite state"
// @Router		/client/galleries/{id}/favorites/toggle [POST]
func (h *Handler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "image_id is required")
		return
	}

	galleryID := c.Param("id")
	clientEmail := c.GetString("client_email")

	isFavorite, err := h.manager.Toggle(c.Request.Context(), galleryID, clientEmail, req.ImageID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FAVORITES_FAILED", "Failed to toggle favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"image_id":    req.ImageID,
		"is_favorite": isFavorite,
	})
}
