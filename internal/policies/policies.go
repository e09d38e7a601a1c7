// Package policies holds the authorization rules as pure functions over the
// authenticated user and the entity being acted on. Handlers translate a false
// result into a 403.
package policies

import (
	"github.com/recetario-app/recetario-api/internal/models"
)

// CanUpdateReceta allows the recipe owner and admins.
func CanUpdateReceta(user *models.Usuario, receta *models.Receta) bool {
	if user == nil {
		return false
	}
	return user.IsAdmin() || receta.UserID == user.ID
}

// CanDeleteReceta allows the recipe owner and admins.
func CanDeleteReceta(user *models.Usuario, receta *models.Receta) bool {
	return CanUpdateReceta(user, receta)
}

// CanCreateComentario allows any authenticated user to comment.
func CanCreateComentario(user *models.Usuario) bool {
	return user != nil
}

// CanUpdateComentario allows the comment author and admins.
func CanUpdateComentario(user *models.Usuario, comentario *models.Comentario) bool {
	if user == nil {
		return false
	}
	return user.IsAdmin() || comentario.UserID == user.ID
}

// CanDeleteComentario allows the comment author and admins.
func CanDeleteComentario(user *models.Usuario, comentario *models.Comentario) bool {
	return CanUpdateComentario(user, comentario)
}

// CanModifyIngrediente resolves ownership through the parent recipe:
// ingredients have no owner of their own.
func CanModifyIngrediente(user *models.Usuario, receta *models.Receta) bool {
	return CanUpdateReceta(user, receta)
}
