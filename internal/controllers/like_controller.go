package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recetario-app/recetario-api/internal/middleware"
	"github.com/recetario-app/recetario-api/internal/resources"
	"github.com/recetario-app/recetario-api/internal/services"
)

// LikeController handles HTTP requests related to likes
type LikeController interface {
	// ToggleLike likes or unlikes a recipe depending on prior state
	ToggleLike(ctx *gin.Context)
	// ListLikes lists the likes of a recipe
	ListLikes(ctx *gin.Context)
	// CountLikes returns the live like count of a recipe
	CountLikes(ctx *gin.Context)
}

type likeController struct {
	likes   *services.LikeService
	recetas *services.RecetaService
}

// NewLikeController creates a new instance of LikeController
func NewLikeController(likes *services.LikeService, recetas *services.RecetaService) *likeController {
	return &likeController{likes: likes, recetas: recetas}
}

// ToggleLike godoc
// @Summary Dar o quitar like a una receta
// @Description Crea el like si no existe (201) o lo elimina si ya existe (200)
// @Tags likes
// @Produce json
// @Param id path int true "ID de la receta"
// @Success 200 {object} map[string]interface{}
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /recetas/{id}/like [post]
func (c *likeController) ToggleLike(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "Receta")
	if err != nil {
		respondError(ctx, err)
		return
	}

	receta, err := c.recetas.Find(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	result, err := c.likes.Toggle(user.ID, receta.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if result.Liked {
		ctx.JSON(http.StatusCreated, gin.H{
			"message":     "Like añadido correctamente",
			"liked":       true,
			"likes_count": result.LikesCount,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Like eliminado correctamente",
		"liked":       false,
		"likes_count": result.LikesCount,
	})
}

// ListLikes godoc
// @Summary Listar likes de una receta
// @Tags likes
// @Produce json
// @Param id path int true "ID de la receta"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /recetas/{id}/likes [get]
func (c *likeController) ListLikes(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "Receta")
	if err != nil {
		respondError(ctx, err)
		return
	}

	receta, err := c.recetas.Find(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	likes, err := c.likes.ListByReceta(receta.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	data := make([]resources.LikeResource, 0, len(likes))
	for i := range likes {
		data = append(data, resources.NewLikeResource(&likes[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"likes":       data,
		"likes_count": len(data),
	})
}

// CountLikes godoc
// @Summary Contar likes de una receta
// @Tags likes
// @Produce json
// @Param id path int true "ID de la receta"
// @Success 200 {object} map[string]int64
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /recetas/{id}/likes/count [get]
func (c *likeController) CountLikes(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "Receta")
	if err != nil {
		respondError(ctx, err)
		return
	}

	receta, err := c.recetas.Find(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	count, err := c.likes.Count(receta.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"likes_count": count})
}
