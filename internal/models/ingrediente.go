package models

import (
	"time"
)

// UnidadesValidas is the accepted set for Ingrediente.Unidad.
var UnidadesValidas = []string{"g", "kg", "ml", "l", "unit", "tablespoon", "teaspoon", "cup", "pinch"}

// Ingrediente belongs to a single recipe. Cantidad is a free-form string so
// values like "2-3" or "1/2" survive as written.
type Ingrediente struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RecetaID  uint      `gorm:"not null;index" json:"receta_id"`
	Nombre    string    `gorm:"size:100;not null" json:"nombre"`
	Cantidad  string    `gorm:"size:50;not null" json:"cantidad"`
	Unidad    string    `gorm:"size:50;not null" json:"unidad"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Receta *Receta `gorm:"foreignKey:RecetaID" json:"-"`
}
