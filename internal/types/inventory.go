package types

import (
	"time"
	"github.com/google/uuid"
)

type InventoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	Product      *Product  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	StockQty     int       `gorm:"not null;default:0" json:"stock_qty"`
	ReservedQty  int       `gorm:"not null;default:0" json:"reserved_qty"`
	UnitCost     float64   `json:"unit_cost,omitempty"`
	SellingPrice float64   `json:"selling_price,omitempty"`
	WeightGrams  float64   `json:"weight_grams,omitempty"`
	Location     string    `json:"location,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (InventoryItem) TableName() string { return "inventory_item" }

type InventoryView struct {
	InventoryItem
	ProductName string `json:"product_name"`
	ProductSKU  string `json:"product_sku"`
}
