package models

import (
	"time"
)

// Comentario is a user comment on a recipe.
type Comentario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RecetaID  uint      `gorm:"not null;index" json:"receta_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Texto     string    `gorm:"size:1000;not null" json:"texto"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *Usuario `gorm:"foreignKey:UserID" json:"-"`
}
