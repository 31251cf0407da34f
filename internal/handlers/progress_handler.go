package handlers

import (
	"net/http"

	"athos-learning-service/internal/models"
	"athos-learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	progress, err := h.Service.GetProgress(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *ProgressHandler) TrackBehavior(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var event models.BehaviorEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	progress, err := h.Service.TrackBehavior(c.Request.Context(), userID, event)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	last := progress.BehaviorData[len(progress.BehaviorData)-1]
	c.JSON(http.StatusOK, gin.H{
		"message":     "behavior tracked",
		"event_count": len(progress.BehaviorData),
		"tracked_at":  last.RecordedAt,
	})
}

type contentProgressRequest struct {
	ContentID    string  `json:"content_id" binding:"required"`
	Completed    bool    `json:"completed"`
	TimeSpent    float64 `json:"time_spent"`
	Interactions int     `json:"interactions"`
}

func (h *ProgressHandler) ReportContentProgress(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var req contentProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.Service.ReportContentProgress(c.Request.Context(), userID, req.ContentID, req.Completed, req.TimeSpent, req.Interactions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "progress recorded"})
}
