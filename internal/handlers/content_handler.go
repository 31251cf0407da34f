package handlers

import (
	"net/http"
	"strconv"

	"athos-learning-service/internal/models"
	"athos-learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	Service *service.ContentService
}

func NewContentHandler(s *service.ContentService) *ContentHandler {
	return &ContentHandler{Service: s}
}

func moduleIDParam(c *gin.Context) (int, bool) {
	moduleID, err := strconv.Atoi(c.Param("moduleId"))
	if err != nil || moduleID < models.ModuleHistory || moduleID > models.ModuleGeography {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid module id"})
		return 0, false
	}
	return moduleID, true
}

func (h *ContentHandler) ListByModule(c *gin.Context) {
	moduleID, ok := moduleIDParam(c)
	if !ok {
		return
	}
	items, err := h.Service.ListByModule(c.Request.Context(), moduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.ContentItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) Get(c *gin.Context) {
	item, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler) Create(c *gin.Context) {
	var item models.ContentItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Create(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) Update(c *gin.Context) {
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

func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
