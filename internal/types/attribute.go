package types

import (
	"time"
	"github.com/google/uuid"
)

// SKUAlphabet is the 36-symbol code alphabet, digits first. Suffix encoding
// and single-character attribute codes both draw from it.
const SKUAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type Dimension string

const (
	DimensionFaceValue Dimension = "face_value"
	DimensionCategory  Dimension = "category"
	DimensionMaterial  Dimension = "material"
	DimensionMotif     Dimension = "motif"
	DimensionFinding   Dimension = "finding"
	DimensionLocking   Dimension = "locking"
	DimensionSize      Dimension = "size"
)

// Dimensions lists the seven SKU dimensions in prefix position order.
// The order is part of the identifier format and must not change.
var Dimensions = [7]Dimension{
	DimensionFaceValue,
	DimensionCategory,
	DimensionMaterial,
	DimensionMotif,
	DimensionFinding,
	DimensionLocking,
	DimensionSize,
}

func ValidDimension(d Dimension) bool {
	for _, known := range Dimensions {
		if d == known {
			return true
		}
	}
	return false
}

type AttributeCode struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Dimension   Dimension `gorm:"type:text;not null;uniqueIndex:idx_attribute_dimension_code" json:"dimension"`
	Code        string    `gorm:"type:varchar(1);not null;uniqueIndex:idx_attribute_dimension_code" json:"code"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (AttributeCode) TableName() string { return "sku_attribute" }
