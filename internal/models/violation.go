package models

import (
	"time"

	"gorm.io/gorm"
)

type ResolutionStatus string

const (
	StatusOpen       ResolutionStatus = "OPEN"
	StatusInProgress ResolutionStatus = "IN_PROGRESS"
	StatusClosed     ResolutionStatus = "CLOSED"
)

// IsValid reports whether the status is one of the enumerated values.
func (s ResolutionStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

type Violation struct {
	ID                   uint64           `gorm:"primarykey" json:"id"`
	Description          string           `gorm:"type:text;not null" json:"description"`
	Location             string           `gorm:"type:varchar(255);not null" json:"location"`
	Date                 time.Time        `gorm:"type:date;not null" json:"date"`
	ResolutionStatus     ResolutionStatus `gorm:"type:varchar(20);not null;default:'OPEN'" json:"resolution_status"`
	ContractorID         uint64           `gorm:"not null;index" json:"contractor_id"`
	SupervisorID         uint64           `gorm:"not null" json:"supervisor_id"`
	ConstructionObjectID uint64           `gorm:"not null;index" json:"construction_object_id"`
	ViolationClassifier  string           `gorm:"type:varchar(100);not null" json:"violation_classifier"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
	DeletedAt            gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relations
	ConstructionObject ConstructionObject `gorm:"foreignKey:ConstructionObjectID" json:"construction_object,omitempty"`
}
