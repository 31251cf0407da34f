package handlers

import (
	"net/http"

	"athos-learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	Service *service.RecommendationService
}

func NewRecommendationHandler(s *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{Service: s}
}

// GetRecommendations serves the aggregated adaptive payload. The service
// degrades internally on lookup failures, so this never 500s.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	c.JSON(http.StatusOK, h.Service.Recommendations(c.Request.Context(), userID))
}

func (h *RecommendationHandler) GetAdaptiveContent(c *gin.Context) {
	moduleID, ok := moduleIDParam(c)
	if !ok {
		return
	}
	userID := c.GetHeader("X-User-ID")
	c.JSON(http.StatusOK, h.Service.RankedContent(c.Request.Context(), userID, moduleID))
}

func (h *RecommendationHandler) GetAdaptiveQuizzes(c *gin.Context) {
	moduleID, ok := moduleIDParam(c)
	if !ok {
		return
	}
	userID := c.GetHeader("X-User-ID")
	c.JSON(http.StatusOK, h.Service.RankedQuizzes(c.Request.Context(), userID, moduleID))
}
