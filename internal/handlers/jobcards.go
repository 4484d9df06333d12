package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/services"
	"github.com/Bloodcipher/Amara/internal/types"
)

type JobCardHandler struct {
	log   *logger.Logger
	cards services.JobCardService
}

func NewJobCardHandler(log *logger.Logger, cards services.JobCardService) *JobCardHandler {
	return &JobCardHandler{
		log:   log.With("handler", "JobCardHandler"),
		cards: cards,
	}
}

// GET /api/job-cards
func (h *JobCardHandler) List(c *gin.Context) {
	rows, err := h.cards.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_cards": rows})
}

// POST /api/job-cards
func (h *JobCardHandler) Create(c *gin.Context) {
	var req struct {
		ProductID         uuid.UUID  `json:"product_id"`
		JobCardNumber     string     `json:"job_card_number"`
		TargetQty         int        `json:"target_qty"`
		AssignedArtisanID *uuid.UUID `json:"assigned_artisan_id"`
		Priority          string     `json:"priority"`
		StartDate         *time.Time `json:"start_date"`
		DueDate           *time.Time `json:"due_date"`
		Notes             string     `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	created, err := h.cards.Create(c.Request.Context(), services.CreateJobCardInput{
		ProductID:         req.ProductID,
		JobCardNumber:     req.JobCardNumber,
		TargetQty:         req.TargetQty,
		AssignedArtisanID: req.AssignedArtisanID,
		Priority:          types.JobCardPriority(req.Priority),
		StartDate:         req.StartDate,
		DueDate:           req.DueDate,
		Notes:             req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PATCH /api/job-cards/:id/status
func (h *JobCardHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job card id"})
		return
	}
	var req struct {
		Status string `json:"status"`
		Actor  string `json:"actor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	card, err := h.cards.Transition(c.Request.Context(), id, types.JobCardStatus(req.Status), req.Actor)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, types.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, types.ErrStaleState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, card)
}
