package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles understood by the HTTP layer. The workflow core never checks
// roles itself; callers enforce them before invoking admin operations.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleClerk      = "clerk"
	RoleViewer     = "viewer"
	RoleClient     = "client"
	RoleContractor = "contractor"
)

// UserAuth represents a user in the system
// Standardized: Go (PascalCase) -> DB (snake_case) -> JSON (camelCase)
type UserAuth struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Username   string     `gorm:"unique;not null" json:"username"`
	Password   string     `gorm:"not null" json:"-"`
	Email      string     `gorm:"unique;not null" json:"email"`
	Name       string     `json:"name,omitempty"`
	Role       string     `gorm:"default:'viewer'" json:"role"`
	Department string     `json:"department,omitempty"` // home department for staff roles
	IsActive   bool       `gorm:"default:true" json:"isActive"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for UserAuth model
func (UserAuth) TableName() string {
	return "user_auths"
}
