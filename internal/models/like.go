package models

import (
	"time"
)

// Like marks that a user liked a recipe. The composite unique index is the
// backstop for the toggle race: two concurrent creates for the same pair
// cannot both succeed.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_receta" json:"user_id"`
	RecetaID  uint      `gorm:"not null;uniqueIndex:idx_likes_user_receta" json:"receta_id"`
	CreatedAt time.Time `json:"created_at"`

	User *Usuario `gorm:"foreignKey:UserID" json:"-"`
}
