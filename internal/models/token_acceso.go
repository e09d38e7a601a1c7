package models

import (
	"time"
)

// TokenAcceso is the server-side record of an issued bearer token, keyed by
// the token's jti claim. Deleting the row revokes the token even though the
// JWT signature stays valid until exp.
type TokenAcceso struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (TokenAcceso) TableName() string {
	return "tokens_acceso"
}
