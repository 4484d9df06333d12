package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/services"
	"github.com/Bloodcipher/Amara/internal/types"
)

type LookupHandler struct {
	log     *logger.Logger
	lookups services.LookupService
}

func NewLookupHandler(log *logger.Logger, lookups services.LookupService) *LookupHandler {
	return &LookupHandler{
		log:     log.With("handler", "LookupHandler"),
		lookups: lookups,
	}
}

// GET /api/lookups/:dimension
func (h *LookupHandler) List(c *gin.Context) {
	dimension := types.Dimension(c.Param("dimension"))
	rows, err := h.lookups.List(c.Request.Context(), dimension)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dimension": dimension, "codes": rows})
}

// POST /api/lookups/:dimension
func (h *LookupHandler) Create(c *gin.Context) {
	var req struct {
		Code        string `json:"code"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	dimension := types.Dimension(c.Param("dimension"))
	created, err := h.lookups.Create(c.Request.Context(), dimension, req.Code, req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /api/lookups/:dimension/:id
func (h *LookupHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attribute id"})
		return
	}
	if err := h.lookups.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
