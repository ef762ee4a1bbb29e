package showcase

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"evermore/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	galleries := rg.Group("/galleries")
	{
		galleries.GET("", h.List)
		galleries.GET("/:id", h.Get)
	}
}

// List returns the public showcase galleries.
// @Summary		List showcase galleries
// @Tags		Marketing
// @Router		/galleries [GET]
func (h *Handler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "GALLERIES_FAILED", "Failed to load galleries")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"galleries": views})
}

func (h *Handler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GALLERIES_FAILED", "Failed to load gallery")
		return
	}

	response.Success(c, http.StatusOK, view)
}
