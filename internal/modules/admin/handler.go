package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"evermore/internal/domain"
	"evermore/internal/modules/contact"
	"evermore/internal/modules/showcase"
	"evermore/internal/pkg/response"
	"evermore/internal/pkg/validator"
)

type Handler struct {
	service   *Service
	showcases *showcase.Service
	contacts  *contact.Service
}

func NewHandler(service *Service, showcases *showcase.Service, contacts *contact.Service) *Handler {
	return &Handler{service: service, showcases: showcases, contacts: contacts}
}

// RegisterPublicRoutes mounts the endpoints reachable without the admin token.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.Login)
}

// RegisterRoutes mounts the token-guarded admin surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	galleries := rg.Group("/client-galleries")
	{
		galleries.POST("", h.CreateGallery)
		galleries.GET("", h.ListGalleries)
		galleries.GET("/:id", h.GetGallery)
		galleries.PUT("/:id", h.UpdateGallery)
		galleries.DELETE("/:id", h.DeleteGallery)
		galleries.POST("/:id/regenerate-code", h.RegenerateCode)
		galleries.POST("/:id/images", h.UploadImage)
		galleries.GET("/:id/downloads", h.ListDownloads)
		galleries.GET("/:id/analytics", h.ListAnalytics)
	}

	rg.DELETE("/images/:imageId", h.DeleteImage)

	showcases := rg.Group("/showcase")
	{
		showcases.POST("", h.CreateShowcase)
		showcases.PUT("/:id", h.UpdateShowcase)
		showcases.DELETE("/:id", h.DeleteShowcase)
	}

	contacts := rg.Group("/contacts")
	{
		contacts.GET("", h.ListContacts)
		contacts.DELETE("/:id", h.DeleteContact)
	}
}

// Login exchanges the admin password for the API token.
// @Summary		Admin login
// @Tags		Admin
// @Param		request	body	LoginRequest	true	"Admin password"
// @Router		/admin/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Password is required")
		return
	}

	token, err := h.service.Login(req.Password)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid password")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}

// galleryResponse exposes the access code, which the client-facing payloads
// never carry.
func galleryResponse(g *domain.ClientGallery) gin.H {
	return gin.H{
		"gallery":     g,
		"access_code": g.AccessCode,
	}
}

func (h *Handler) CreateGallery(c *gin.Context) {
	var req CreateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid gallery payload")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid gallery payload", errs)
		return
	}

	gallery, err := h.service.CreateGallery(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create gallery")
		return
	}

	response.Success(c, http.StatusCreated, galleryResponse(gallery))
}

func (h *Handler) ListGalleries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	galleries, total, err := h.service.ListGalleries(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list galleries")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"galleries": galleries,
		"total":     total,
	})
}

func (h *Handler) GetGallery(c *gin.Context) {
	gallery, err := h.service.GetGallery(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOOKUP_FAILED", "Failed to load gallery")
		return
	}

	response.Success(c, http.StatusOK, galleryResponse(gallery))
}

func (h *Handler) UpdateGallery(c *gin.Context) {
	var req UpdateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid gallery payload")
		return
	}

	gallery, err := h.service.UpdateGallery(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update gallery")
		return
	}

	response.Success(c, http.StatusOK, galleryResponse(gallery))
}

func (h *Handler) DeleteGallery(c *gin.Context) {
	if err := h.service.DeleteGallery(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete gallery")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) RegenerateCode(c *gin.Context) {
	gallery, err := h.service.RegenerateAccessCode(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to regenerate access code")
		return
	}

	response.Success(c, http.StatusOK, galleryResponse(gallery))
}

// UploadImage accepts a multipart original and appends it to the gallery.
func (h *Handler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "An 'image' file field is required")
		return
	}
	defer file.Close()

	img, err := h.service.UploadImage(c.Request.Context(),
		c.Param("id"), header.Filename, c.PostForm("title"),
		header.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to upload image")
		return
	}

	response.Success(c, http.StatusCreated, img)
}

func (h *Handler) DeleteImage(c *gin.Context) {
	if err := h.service.DeleteImage(c.Request.Context(), c.Param("imageId")); err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete image")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListDownloads(c *gin.Context) {
	records, err := h.service.ListDownloads(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list downloads")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"downloads": records})
}

func (h *Handler) ListAnalytics(c *gin.Context) {
	sessions, err := h.service.ListAnalytics(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list analytics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) CreateShowcase(c *gin.Context) {
	var req ShowcaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title and cover image are required")
		return
	}

	gallery := &domain.ShowcaseGallery{
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		EventDate:  req.EventDate,
		CoverImage: req.CoverImage,
		Images:     req.Images,
	}
	if err := h.showcases.Create(c.Request.Context(), gallery); err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create showcase gallery")
		return
	}

	response.Success(c, http.StatusCreated, gallery)
}

func (h *Handler) UpdateShowcase(c *gin.Context) {
	var req ShowcaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title and cover image are required")
		return
	}

	gallery := &domain.ShowcaseGallery{
		ID:         c.Param("id"),
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		EventDate:  req.EventDate,
		CoverImage: req.CoverImage,
		Images:     req.Images,
	}
	if err := h.showcases.Update(c.Request.Context(), gallery); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update showcase gallery")
		return
	}

	response.Success(c, http.StatusOK, gallery)
}

func (h *Handler) DeleteShowcase(c *gin.Context) {
	if err := h.showcases.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete showcase gallery")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.contacts.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list contacts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contacts": contacts})
}

func (h *Handler) DeleteContact(c *gin.Context) {
	if err := h.contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete contact")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
