package types

import (
	"time"
	"github.com/google/uuid"
)

// QCLog is an additive inspection record. Posting one never rewrites the
// job card's completed quantity; that counter stays advisory.
type QCLog struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobCardID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"job_card_id"`
	JobCard        *JobCard   `gorm:"constraint:OnDelete:CASCADE;foreignKey:JobCardID;references:ID" json:"job_card,omitempty"`
	InspectedBy    *uuid.UUID `gorm:"type:uuid" json:"inspected_by,omitempty"`
	QtyPassed      int        `gorm:"not null" json:"qty_passed"`
	QtyFailed      int        `gorm:"not null" json:"qty_failed"`
	DefectReason   string     `json:"defect_reason,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	InspectionDate time.Time  `gorm:"not null;default:now();index" json:"inspection_date"`
}

func (QCLog) TableName() string { return "qc_log" }

type QCLogView struct {
	QCLog
	JobCardNumber string `json:"job_card_number"`
	InspectorName string `json:"inspector_name,omitempty"`
}
