package models

import (
	"time"
)

// Receta is the central entity users publish and interact with. Ingredientes,
// Likes and Comentarios are owned compositions: deleting a recipe removes
// them all.
type Receta struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	Titulo        string    `gorm:"size:200;not null" json:"titulo"`
	Descripcion   string    `gorm:"type:text;not null" json:"descripcion"`
	Instrucciones string    `gorm:"type:text;not null" json:"instrucciones"`
	ImagenURL     string    `json:"imagen_url,omitempty"`
	Publicada     bool      `gorm:"default:false" json:"publicada"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User         *Usuario      `gorm:"foreignKey:UserID" json:"-"`
	Ingredientes []Ingrediente `gorm:"foreignKey:RecetaID;constraint:OnDelete:CASCADE" json:"-"`
	Likes        []Like        `gorm:"foreignKey:RecetaID;constraint:OnDelete:CASCADE" json:"-"`
	Comentarios  []Comentario  `gorm:"foreignKey:RecetaID;constraint:OnDelete:CASCADE" json:"-"`
}
