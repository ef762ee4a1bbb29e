package partner

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
	partners := rg.Group("/partners")
	{
		partners.GET("", h.List)
		partners.GET("/:id", h.Get)
		partners.POST("/inquiries", h.SubmitInquiry)
	}
}

// List returns the active partner directory.
// @Summary		List partners
// @Tags		Marketing
// @Param		category	query	string	false	"Partner category"
// @Param		featured	query	bool	false	"Featured partners only"
// @Router		/partners [GET]
func (h *Handler) List(c *gin.Context) {
	partners, err := h.service.List(c.Request.Context(), c.Query("category"), c.Query("featured") == "true")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "PARTNERS_FAILED", "Failed to load partners")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"partners": partners})
}

func (h *Handler) Get(c *gin.Context) {
	partner, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Partner not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PARTNERS_FAILED", "Failed to load partner")
		return
	}

	response.Success(c, http.StatusOK, partner)
}

// SubmitInquiry stores a vendor partnership request.
// @Summary		Submit a partnership inquiry
// @Tags		Marketing
// @Param		request	body	InquiryRequest	true	"Inquiry details"
// @Router		/partners/inquiries [POST]
func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, email, company name and message are required")
		return
	}

	inq, err := h.service.SubmitInquiry(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INQUIRY_FAILED", "Failed to submit inquiry")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": inq.ID, "status": inq.Status})
}
