package types

import (
	"time"
	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`
	SKU         string    `gorm:"column:sku;not null;uniqueIndex" json:"sku"`
	SequenceNum int64     `gorm:"not null" json:"sequence_num"`
	FaceValueID uuid.UUID `gorm:"type:uuid;not null" json:"face_value_id"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null" json:"category_id"`
	MaterialID  uuid.UUID `gorm:"type:uuid;not null" json:"material_id"`
	MotifID     uuid.UUID `gorm:"type:uuid;not null" json:"motif_id"`
	FindingID   uuid.UUID `gorm:"type:uuid;not null" json:"finding_id"`
	LockingID   uuid.UUID `gorm:"type:uuid;not null" json:"locking_id"`
	SizeID      uuid.UUID `gorm:"type:uuid;not null" json:"size_id"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string { return "product" }

// AttributeID returns the referenced attribute id for a dimension.
func (p *Product) AttributeID(d Dimension) uuid.UUID {
	switch d {
	case DimensionFaceValue:
		return p.FaceValueID
	case DimensionCategory:
		return p.CategoryID
	case DimensionMaterial:
		return p.MaterialID
	case DimensionMotif:
		return p.MotifID
	case DimensionFinding:
		return p.FindingID
	case DimensionLocking:
		return p.LockingID
	case DimensionSize:
		return p.SizeID
	}
	return uuid.Nil
}

// ProductView is the list read model with joined attribute codes and names.
type ProductView struct {
	Product
	FaceValueCode string `json:"face_value_code"`
	CategoryCode  string `json:"category_code"`
	MaterialCode  string `json:"material_code"`
	MotifCode     string `json:"motif_code"`
	FindingCode   string `json:"finding_code"`
	LockingCode   string `json:"locking_code"`
	SizeCode      string `json:"size_code"`
	FaceValueName string `json:"face_value_name"`
	CategoryName  string `json:"category_name"`
	MaterialName  string `json:"material_name"`
	MotifName     string `json:"motif_name"`
	FindingName   string `json:"finding_name"`
	LockingName   string `json:"locking_name"`
	SizeName      string `json:"size_name"`
}
