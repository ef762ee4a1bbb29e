package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evermore/internal/pkg/response"
	"evermore/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
}

// Submit stores a contact form submission.
// @Summary		Submit the contact form
// @Tags		Marketing
// @Param		request	body	SubmitRequest	true	"Contact details"
// @Router		/contact [POST]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, email and message are required", errs)
		return
	}

	contact, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CONTACT_FAILED", "Failed to submit contact form")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": contact.ID})
}
