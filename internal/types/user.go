package types

import (
	"time"
	"github.com/google/uuid"
)

const RoleArtisan = "artisan"

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;uniqueIndex" json:"email"`
	Role      string    `gorm:"not null" json:"role"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (User) TableName() string { return "app_user" }
