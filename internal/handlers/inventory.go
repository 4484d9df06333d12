package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/repos"
	"github.com/Bloodcipher/Amara/internal/types"
)

type InventoryHandler struct {
	log       *logger.Logger
	inventory repos.InventoryRepo
}

func NewInventoryHandler(log *logger.Logger, inventory repos.InventoryRepo) *InventoryHandler {
	return &InventoryHandler{
		log:       log.With("handler", "InventoryHandler"),
		inventory: inventory,
	}
}

// GET /api/inventory
func (h *InventoryHandler) List(c *gin.Context) {
	rows, err := h.inventory.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": rows})
}

// POST /api/inventory
func (h *InventoryHandler) Create(c *gin.Context) {
	var req struct {
		ProductID    uuid.UUID `json:"product_id"`
		StockQty     int       `json:"stock_qty"`
		UnitCost     float64   `json:"unit_cost"`
		SellingPrice float64   `json:"selling_price"`
		WeightGrams  float64   `json:"weight_grams"`
		Location     string    `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ProductID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing product_id"})
		return
	}
	if req.StockQty < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stock_qty cannot be negative"})
		return
	}
	created, err := h.inventory.Create(c.Request.Context(), &types.InventoryItem{
		ID:           uuid.New(),
		ProductID:    req.ProductID,
		StockQty:     req.StockQty,
		UnitCost:     req.UnitCost,
		SellingPrice: req.SellingPrice,
		WeightGrams:  req.WeightGrams,
		Location:     req.Location,
	})
	if err != nil {
		if types.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "inventory record already exists for product"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}
