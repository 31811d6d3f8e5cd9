package models

import (
	"time"

	"gorm.io/gorm"
)

type ConstructionObject struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Address   string         `gorm:"type:varchar(255);not null" json:"address"`
	Type      *string        `gorm:"type:varchar(100)" json:"type"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Violations []Violation `gorm:"foreignKey:ConstructionObjectID" json:"violations,omitempty"`
}
