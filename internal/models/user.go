package models

import "time"

// ===============================
// Roles
// ===============================

const (
	RoleStudent   = "student"
	RoleFaculty   = "faculty"
	RolePrincipal = "principal"
	RoleAdmin     = "admin"
)

// IsRequesterRole reports whether the role may book appointments.
func IsRequesterRole(role string) bool {
	return role == RoleStudent || role == RoleFaculty
}

// IsApproverRole reports whether the role may review requests and manage the queue.
func IsApproverRole(role string) bool {
	return role == RolePrincipal || role == RoleAdmin
}

func IsValidRole(role string) bool {
	return IsRequesterRole(role) || IsApproverRole(role)
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'student'" json:"role"`
	Active       bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
