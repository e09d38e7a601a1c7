package models

import (
	"time"
)

// Role values recognized by the authorization policies.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Usuario represents a registered account. The password column holds a bcrypt
// hash and is never serialized.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:60;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *Usuario) IsAdmin() bool {
	return u.Role == RoleAdmin
}
