package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleContractor Role = "contractor"
	RoleSupervisor Role = "supervisor"
	RoleManager    Role = "manager"
)

// IsValid reports whether the role is one of the enumerated values.
func (r Role) IsValid() bool {
	switch r {
	case RoleContractor, RoleSupervisor, RoleManager:
		return true
	}
	return false
}

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Login        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"login"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Role         Role           `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
