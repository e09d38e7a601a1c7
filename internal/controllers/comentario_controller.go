package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/recetario-app/recetario-api/internal/middleware"
	"github.com/recetario-app/recetario-api/internal/models"
	"github.com/recetario-app/recetario-api/internal/policies"
	"github.com/recetario-app/recetario-api/internal/resources"
	"github.com/recetario-app/recetario-api/internal/services"
)

// ComentarioController handles HTTP requests related to comments
type ComentarioController interface {
	// ListComentarios lists the comments of a recipe
	ListComentarios(ctx *gin.Context)
	// CreateComentario adds a comment to a recipe
	CreateComentario(ctx *gin.Context)
	// GetComentario retrieves one comment
	GetComentario(ctx *gin.Context)
	// UpdateComentario updates a comment
	UpdateComentario(ctx *gin.Context)
	// DeleteComentario deletes a comment
	DeleteComentario(ctx *gin.Context)
}

type comentarioController struct {
	comentarios *services.ComentarioService
	recetas     *services.RecetaService
	validate    *validator.Validate
}

// NewComentarioController creates a new instance of ComentarioController
func NewComentarioController(comentarios *services.ComentarioService, recetas *services.RecetaService, validate *validator.Validate) *comentarioController {
	return &comentarioController{comentarios: comentarios, recetas: recetas, validate: validate}
}

// ComentarioRequest is the payload for creating or updating a comment.
type ComentarioRequest struct {
	Texto string `json:"texto" validate:"required,max=1000"`
}

// ListComentarios godoc
// @Summary Listar comentarios de una receta
// @Tags comentarios
// @Produce json
// @Param id path int true "ID de la receta"
// @Success 200 {array} resources.ComentarioResource
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /recetas/{id}/comentarios [get]
func (c *comentarioController) ListComentarios(ctx *gin.Context) {
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

	comentarios, err := c.comentarios.ListByReceta(receta.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	data := make([]resources.ComentarioResource, 0, len(comentarios))
	for i := range comentarios {
		data = append(data, resources.NewComentarioResource(&comentarios[i]))
	}
	ctx.JSON(http.StatusOK, data)
}

// CreateComentario godoc
// @Summary Comentar una receta
// @Description Cualquier usuario autenticado puede comentar cualquier receta
// @Tags comentarios
// @Accept json
// @Produce json
// @Param id path int true "ID de la receta"
// @Param request body ComentarioRequest true "Comentario"
// @Success 201 {object} resources.ComentarioResource
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /recetas/{id}/comentarios [post]
func (c *comentarioController) CreateComentario(ctx *gin.Context) {
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
	if !policies.CanCreateComentario(user) {
		respondError(ctx, &models.AuthenticationError{Message: "Se requiere un token de acceso"})
		return
	}

	var req ComentarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, models.NewValidationError("_", "El cuerpo de la petición no es válido"))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidation(ctx, err)
		return
	}

	comentario, err := c.comentarios.Create(receta.ID, user.ID, req.Texto)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resources.NewComentarioResource(comentario))
}

// GetComentario godoc
// @Summary Ver un comentario
// @Tags comentarios
// @Produce json
// @Param id path int true "ID del comentario"
// @Success 200 {object} resources.ComentarioResource
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /comentarios/{id} [get]
func (c *comentarioController) GetComentario(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "Comentario")
	if err != nil {
		respondError(ctx, err)
		return
	}

	comentario, err := c.comentarios.Find(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resources.NewComentarioResource(comentario))
}

// UpdateComentario godoc
// @Summary Actualizar un comentario
// @Description Solo el autor del comentario o un admin
// @Tags comentarios
// @Accept json
// @Produce json
// @Param id path int true "ID del comentario"
// @Param request body ComentarioRequest true "Nuevo texto"
// @Success 200 {object} resources.ComentarioResource
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /comentarios/{id} [put]
func (c *comentarioController) UpdateComentario(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "Comentario")
	if err != nil {
		respondError(ctx, err)
		return
	}

	comentario, err := c.comentarios.Find(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	if !policies.CanUpdateComentario(user, comentario) {
		respondError(ctx, &models.AuthorizationError{Message: "Solo puedes modificar tus propios comentarios"})
		return
	}

	var req ComentarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, models.NewValidationError("_", "El cuerpo de la petición no es válido"))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidation(ctx, err)
		return
	}

	if err := c.comentarios.Update(comentario, req.Texto); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resources.NewComentarioResource(comentario))
}

// DeleteComentario godoc
// @Summary Eliminar un comentario
// @Description Solo el autor del comentario o un admin
// @Tags comentarios
// @Produce json
// @Param id path int true "ID del comentario"
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /comentarios/{id} [delete]
func (c *comentarioController) DeleteComentario(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "Comentario")
	if err != nil {
		respondError(ctx, err)
		return
	}

	comentario, err := c.comentarios.Find(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	if !policies.CanDeleteComentario(user, comentario) {
		respondError(ctx, &models.AuthorizationError{Message: "Solo puedes eliminar tus propios comentarios"})
		return
	}

	if err := c.comentarios.Delete(comentario); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Comentario eliminado"})
}
