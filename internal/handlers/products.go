package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/repos"
	"github.com/Bloodcipher/Amara/internal/services"
	"github.com/Bloodcipher/Amara/internal/types"
)

type ProductHandler struct {
	log      *logger.Logger
	sku      services.SKUService
	products repos.ProductRepo
}

func NewProductHandler(log *logger.Logger, sku services.SKUService, products repos.ProductRepo) *ProductHandler {
	return &ProductHandler{
		log:      log.With("handler", "ProductHandler"),
		sku:      sku,
		products: products,
	}
}

// skuSelectionRequest carries one attribute id per dimension.
type skuSelectionRequest struct {
	FaceValueID uuid.UUID `json:"face_value_id"`
	CategoryID  uuid.UUID `json:"category_id"`
	MaterialID  uuid.UUID `json:"material_id"`
	MotifID     uuid.UUID `json:"motif_id"`
	FindingID   uuid.UUID `json:"finding_id"`
	LockingID   uuid.UUID `json:"locking_id"`
	SizeID      uuid.UUID `json:"size_id"`
}

func (r *skuSelectionRequest) selections() map[types.Dimension]uuid.UUID {
	return map[types.Dimension]uuid.UUID{
		types.DimensionFaceValue: r.FaceValueID,
		types.DimensionCategory:  r.CategoryID,
		types.DimensionMaterial:  r.MaterialID,
		types.DimensionMotif:     r.MotifID,
		types.DimensionFinding:   r.FindingID,
		types.DimensionLocking:   r.LockingID,
		types.DimensionSize:      r.SizeID,
	}
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	rows, err := h.products.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": rows})
}

// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		skuSelectionRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	created, err := h.sku.CreateProduct(c.Request.Context(), services.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Selections:  req.selections(),
	})
	if err != nil {
		c.JSON(skuErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// POST /api/sku/preview
func (h *ProductHandler) Preview(c *gin.Context) {
	var req skuSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	preview, err := h.sku.Preview(c.Request.Context(), req.selections())
	if err != nil {
		c.JSON(skuErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, preview)
}

func skuErrorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrIncompleteSelection):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrSequenceExhausted):
		return http.StatusConflict
	case errors.Is(err, types.ErrAllocationConflict):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}
