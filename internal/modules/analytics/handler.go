package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evermore/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the telemetry endpoints on a session-protected group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/client/galleries/:id/analytics")
	{
		sessions.POST("/start", h.Start)
		sessions.POST("/end", h.End)
		sessions.POST("/viewed", h.Viewed)
	}
}

type endRequest struct {
	SessionID       string `json:"session_id" binding:"required"`
	ImagesViewed    int    `json:"images_viewed"`
	DurationSeconds int64  `json:"duration_seconds"`
}

type viewedRequest struct {
	SessionID    string `json:"session_id" binding:"required"`
	ImagesViewed int    `json:"images_viewed"`
}

// Start opens a visit record when the gallery viewer mounts.
// @Summary		Start an analytics session
// @Tags		Client gallery
// @Router		/client/galleries/{id}/analytics/start [POST]
func (h *Handler) Start(c *gin.Context) {
	id, err := h.service.StartSession(c.Request.Context(),
		c.Param("id"), c.GetString("client_email"), c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to start session")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session_id": id})
}

// End closes a visit record.
// @Summary		End an analytics session
// @Tags		Client gallery
// @Router		/client/galleries/{id}/analytics/end [POST]
func (h *Handler) End(c *gin.Context) {
	var req endRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "session_id is required")
		return
	}

	if err := h.service.EndSession(c.Request.Context(), req.SessionID, req.ImagesViewed, req.DurationSeconds); err != nil {
		response.Error(c, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to end session")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session_id": req.SessionID})
}

// Viewed patches the running image view count.
// @Summary		Report images viewed
// @Tags		Client gallery
// @Router		/client/galleries/{id}/analytics/viewed [POST]
func (h *Handler) Viewed(c *gin.Context) {
	var req viewedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "session_id is required")
		return
	}

	if err := h.service.RecordImagesViewed(c.Request.Context(), req.SessionID, req.ImagesViewed); err != nil {
		response.Error(c, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to record views")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session_id": req.SessionID})
}
