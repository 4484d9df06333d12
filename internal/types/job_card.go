package types

import (
	"time"
	"github.com/google/uuid"
)

type JobCardStatus string

const (
	JobCardPending    JobCardStatus = "pending"
	JobCardInProgress JobCardStatus = "in_progress"
	JobCardOnHold     JobCardStatus = "on_hold"
	JobCardCompleted  JobCardStatus = "completed"
	JobCardCancelled  JobCardStatus = "cancelled"
)

var JobCardStatuses = [5]JobCardStatus{
	JobCardPending,
	JobCardInProgress,
	JobCardOnHold,
	JobCardCompleted,
	JobCardCancelled,
}

func ValidJobCardStatus(s JobCardStatus) bool {
	for _, known := range JobCardStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// allowedTransitions is the full lifecycle. completed and cancelled are
// terminal: they have no outgoing edges, not even to themselves.
var allowedTransitions = map[JobCardStatus][]JobCardStatus{
	JobCardPending:    {JobCardInProgress, JobCardCancelled},
	JobCardInProgress: {JobCardCompleted, JobCardOnHold, JobCardCancelled},
	JobCardOnHold:     {JobCardInProgress, JobCardCancelled},
	JobCardCompleted:  {},
	JobCardCancelled:  {},
}

func (s JobCardStatus) CanTransitionTo(target JobCardStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s JobCardStatus) Terminal() bool {
	return len(allowedTransitions[s]) == 0 && ValidJobCardStatus(s)
}

type JobCardPriority string

const (
	PriorityLow    JobCardPriority = "low"
	PriorityNormal JobCardPriority = "normal"
	PriorityHigh   JobCardPriority = "high"
	PriorityUrgent JobCardPriority = "urgent"
)

func ValidJobCardPriority(p JobCardPriority) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type JobCard struct {
	ID                uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Product           *Product        `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	JobCardNumber     string          `gorm:"not null;uniqueIndex" json:"job_card_number"`
	TargetQty         int             `gorm:"not null" json:"target_qty"`
	CompletedQty      int             `gorm:"not null;default:0" json:"completed_qty"`
	AssignedArtisanID *uuid.UUID      `gorm:"type:uuid;index" json:"assigned_artisan_id,omitempty"`
	AssignedArtisan   *User           `gorm:"constraint:OnDelete:SET NULL;foreignKey:AssignedArtisanID;references:ID" json:"assigned_artisan,omitempty"`
	Status            JobCardStatus   `gorm:"type:text;not null;default:'pending';index" json:"status"`
	Priority          JobCardPriority `gorm:"type:text;not null;default:'normal'" json:"priority"`
	StartDate         *time.Time      `json:"start_date,omitempty"`
	DueDate           *time.Time      `json:"due_date,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (JobCard) TableName() string { return "job_card" }

// JobCardView is the tracker read model with joined product and operator fields.
type JobCardView struct {
	JobCard
	ProductName string `json:"product_name"`
	ProductSKU  string `json:"product_sku"`
	ArtisanName string `json:"artisan_name,omitempty"`
}
