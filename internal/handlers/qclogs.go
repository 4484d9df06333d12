package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/services"
	"github.com/Bloodcipher/Amara/internal/types"
)

type QCLogHandler struct {
	log *logger.Logger
	qc  services.QCService
}

func NewQCLogHandler(log *logger.Logger, qc services.QCService) *QCLogHandler {
	return &QCLogHandler{
		log: log.With("handler", "QCLogHandler"),
		qc:  qc,
	}
}

// GET /api/qc-logs
func (h *QCLogHandler) List(c *gin.Context) {
	rows, err := h.qc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"qc_logs": rows})
}

// POST /api/qc-logs
func (h *QCLogHandler) Create(c *gin.Context) {
	var req struct {
		JobCardID    uuid.UUID  `json:"job_card_id"`
		InspectedBy  *uuid.UUID `json:"inspected_by"`
		QtyPassed    int        `json:"qty_passed"`
		QtyFailed    int        `json:"qty_failed"`
		DefectReason string     `json:"defect_reason"`
		Notes        string     `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	created, err := h.qc.Create(c.Request.Context(), services.CreateQCLogInput{
		JobCardID:    req.JobCardID,
		InspectedBy:  req.InspectedBy,
		QtyPassed:    req.QtyPassed,
		QtyFailed:    req.QtyFailed,
		DefectReason: req.DefectReason,
		Notes:        req.Notes,
	})
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}
