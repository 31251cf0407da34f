package handlers

import (
	"net/http"

	"athos-learning-service/internal/models"
	"athos-learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service  *service.QuizService
	Progress *service.ProgressService
}

func NewQuizHandler(s *service.QuizService, progress *service.ProgressService) *QuizHandler {
	return &QuizHandler{Service: s, Progress: progress}
}

// ListByModule serves learner-facing quizzes: correctness flags stripped.
func (h *QuizHandler) ListByModule(c *gin.Context) {
	moduleID, ok := moduleIDParam(c)
	if !ok {
		return
	}
	quizzes, err := h.Service.ListByModule(c.Request.Context(), moduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sanitized := make([]models.Quiz, 0, len(quizzes))
	for _, quiz := range quizzes {
		sanitized = append(sanitized, quiz.Sanitized())
	}
	c.JSON(http.StatusOK, sanitized)
}

func (h *QuizHandler) Get(c *gin.Context) {
	quiz, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}
	c.JSON(http.StatusOK, quiz.Sanitized())
}

type submitQuizRequest struct {
	// question id -> chosen option id
	Answers map[string]string `json:"answers" binding:"required"`
}

func (h *QuizHandler) Submit(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Progress.SubmitQuiz(c.Request.Context(), userID, c.Param("id"), req.Answers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *QuizHandler) Create(c *gin.Context) {
	var quiz models.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Create(c.Request.Context(), &quiz); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) Update(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (h *QuizHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
