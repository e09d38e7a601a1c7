// Package resources defines the JSON shapes returned by the API, decoupled
// from the persistence models.
package resources

import (
	"time"

	"github.com/recetario-app/recetario-api/internal/models"
)

// RecetaResource is the recipe wire shape. Liked-by-user is only present for
// authenticated requests; ingredient and comment collections only on detail
// responses.
type RecetaResource struct {
	ID               uint                  `json:"id"`
	Titulo           string                `json:"titulo"`
	Descripcion      string                `json:"descripcion"`
	Instrucciones    string                `json:"instrucciones"`
	Publicada        bool                  `json:"publicada"`
	UserID           uint                  `json:"user_id"`
	ImagenURL        string                `json:"imagen_url"`
	LikesCount       int64                 `json:"likes_count"`
	LikedByUser      *bool                 `json:"liked_by_user,omitempty"`
	ComentariosCount *int64                `json:"comentarios_count,omitempty"`
	Ingredientes     []IngredienteResource `json:"ingredientes,omitempty"`
	Comentarios      []ComentarioResource  `json:"comentarios,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

type IngredienteResource struct {
	ID       uint   `json:"id"`
	RecetaID uint   `json:"receta_id"`
	Nombre   string `json:"nombre"`
	Cantidad string `json:"cantidad"`
	Unidad   string `json:"unidad"`
}

type ComentarioResource struct {
	ID        uint      `json:"id"`
	RecetaID  uint      `json:"receta_id"`
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Texto     string    `json:"texto"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LikeResource struct {
	ID        uint      `json:"id"`
	RecetaID  uint      `json:"receta_id"`
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UsuarioResource struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRecetaResource builds the wire shape for a recipe. imageURL resolves a
// stored path to a public URL; likedByUser is nil for anonymous callers.
func NewRecetaResource(receta *models.Receta, likesCount int64, likedByUser *bool, imageURL func(string) string) RecetaResource {
	res := RecetaResource{
		ID:            receta.ID,
		Titulo:        receta.Titulo,
		Descripcion:   receta.Descripcion,
		Instrucciones: receta.Instrucciones,
		Publicada:     receta.Publicada,
		UserID:        receta.UserID,
		ImagenURL:     imageURL(receta.ImagenURL),
		LikesCount:    likesCount,
		LikedByUser:   likedByUser,
		CreatedAt:     receta.CreatedAt,
		UpdatedAt:     receta.UpdatedAt,
	}

	if receta.Ingredientes != nil {
		res.Ingredientes = make([]IngredienteResource, 0, len(receta.Ingredientes))
		for i := range receta.Ingredientes {
			res.Ingredientes = append(res.Ingredientes, NewIngredienteResource(&receta.Ingredientes[i]))
		}
	}

	if receta.Comentarios != nil {
		count := int64(len(receta.Comentarios))
		res.ComentariosCount = &count
		res.Comentarios = make([]ComentarioResource, 0, len(receta.Comentarios))
		for i := range receta.Comentarios {
			res.Comentarios = append(res.Comentarios, NewComentarioResource(&receta.Comentarios[i]))
		}
	}

	return res
}

func NewIngredienteResource(ingrediente *models.Ingrediente) IngredienteResource {
	return IngredienteResource{
		ID:       ingrediente.ID,
		RecetaID: ingrediente.RecetaID,
		Nombre:   ingrediente.Nombre,
		Cantidad: ingrediente.Cantidad,
		Unidad:   ingrediente.Unidad,
	}
}

func NewComentarioResource(comentario *models.Comentario) ComentarioResource {
	res := ComentarioResource{
		ID:        comentario.ID,
		RecetaID:  comentario.RecetaID,
		UserID:    comentario.UserID,
		Texto:     comentario.Texto,
		CreatedAt: comentario.CreatedAt,
		UpdatedAt: comentario.UpdatedAt,
	}
	if comentario.User != nil {
		res.UserName = comentario.User.Name
	}
	return res
}

func NewLikeResource(like *models.Like) LikeResource {
	res := LikeResource{
		ID:        like.ID,
		RecetaID:  like.RecetaID,
		UserID:    like.UserID,
		CreatedAt: like.CreatedAt,
	}
	if like.User != nil {
		res.UserName = like.User.Name
	}
	return res
}

func NewUsuarioResource(user *models.Usuario) UsuarioResource {
	return UsuarioResource{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
