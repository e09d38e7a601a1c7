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

// IngredienteController handles HTTP requests related to ingredients
type IngredienteController interface {
	// ListIngredientes lists the ingredients of a recipe
	ListIngredientes(ctx *gin.Context)
	// CreateIngrediente adds an ingredient to a recipe
	CreateIngrediente(ctx *gin.Context)
	// GetIngrediente retrieves one ingredient
	GetIngrediente(ctx *gin.Context)
	// UpdateIngrediente updates an ingredient
	UpdateIngrediente(ctx *gin.Context)
	// DeleteIngrediente deletes an ingredient
	DeleteIngrediente(ctx *gin.Context)
}

type ingredienteController struct {
	ingredientes *services.IngredienteService
	recetas      *services.RecetaService
	validate     *validator.Validate
}

// NewIngredienteController creates a new instance of IngredienteController
func NewIngredienteController(ingredientes *services.IngredienteService, recetas *services.RecetaService, validate *validator.Validate) *ingredienteController {
	return &ingredienteController{ingredientes: ingredientes, recetas: recetas, validate: validate}
}

// IngredienteRequest is the payload for creating an ingredient.
type IngredienteRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=100"`
	Cantidad string `json:"cantidad" validate:"required,max=50"`
	Unidad   string `json:"unidad" validate:"required,oneof=g kg ml l unit tablespoon teaspoon cup pinch"`
}

// UpdateIngredienteRequest updates only the fields that were sent.
type UpdateIngredienteRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,max=100"`
	Cantidad *string `json:"cantidad" validate:"omitempty,max=50"`
	Unidad   *string `json:"unidad" validate:"omitempty,oneof=g kg ml l unit tablespoon teaspoon cup pinch"`
}

// ListIngredientes godoc
// @Summary Listar ingredientes de una receta
// @Tags ingredientes
// @Produce json
// @Param id path int true "ID de la receta"
// @Success 200 {array} resources.IngredienteResource
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /recetas/{id}/ingredientes [get]
func (c *ingredienteController) ListIngredientes(ctx *gin.Context) {
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

	ingredientes, err := c.ingredientes.ListByReceta(receta.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	data := make([]resources.IngredienteResource, 0, len(ingredientes))
	for i := range ingredientes {
		data = append(data, resources.NewIngredienteResource(&ingredientes[i]))
	}
	ctx.JSON(http.StatusOK, data)
}

// CreateIngrediente godoc
// @Summary Añadir un ingrediente a una receta
// @Description Solo el propietario de la receta o un admin pueden añadir ingredientes
// @Tags ingredientes
// @Accept json
// @Produce json
// @Param id path int true "ID de la receta"
// @Param request body IngredienteRequest true "Ingrediente"
// @Success 201 {object} resources.IngredienteResource
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /recetas/{id}/ingredientes [post]
func (c *ingredienteController) CreateIngrediente(ctx *gin.Context) {
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
	if !policies.CanModifyIngrediente(user, receta) {
		respondError(ctx, &models.AuthorizationError{Message: "Solo puedes modificar ingredientes de tus propias recetas"})
		return
	}

	var req IngredienteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, models.NewValidationError("_", "El cuerpo de la petición no es válido"))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidation(ctx, err)
		return
	}

	ingrediente, err := c.ingredientes.Create(receta.ID, services.IngredienteInput{
		Nombre:   req.Nombre,
		Cantidad: req.Cantidad,
		Unidad:   req.Unidad,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resources.NewIngredienteResource(ingrediente))
}

// GetIngrediente godoc
// @Summary Ver un ingrediente
// @Tags ingredientes
// @Produce json
// @Param id path int true "ID del ingrediente"
// @Success 200 {object} resources.IngredienteResource
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /ingredientes/{id} [get]
func (c *ingredienteController) GetIngrediente(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "Ingrediente")
	if err != nil {
		respondError(ctx, err)
		return
	}

	ingrediente, err := c.ingredientes.Find(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resources.NewIngredienteResource(ingrediente))
}

// UpdateIngrediente godoc
// @Summary Actualizar un ingrediente
// @Description La autorización se resuelve a través de la receta a la que pertenece
// @Tags ingredientes
// @Accept json
// @Produce json
// @Param id path int true "ID del ingrediente"
// @Param request body UpdateIngredienteRequest true "Campos a actualizar"
// @Success 200 {object} resources.IngredienteResource
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /ingredientes/{id} [put]
func (c *ingredienteController) UpdateIngrediente(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "Ingrediente")
	if err != nil {
		respondError(ctx, err)
		return
	}

	ingrediente, err := c.ingredientes.Find(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	if !policies.CanModifyIngrediente(user, ingrediente.Receta) {
		respondError(ctx, &models.AuthorizationError{Message: "Solo puedes modificar ingredientes de tus propias recetas"})
		return
	}

	var req UpdateIngredienteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, models.NewValidationError("_", "El cuerpo de la petición no es válido"))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidation(ctx, err)
		return
	}

	err = c.ingredientes.Update(ingrediente, services.UpdateIngredienteInput{
		Nombre:   req.Nombre,
		Cantidad: req.Cantidad,
		Unidad:   req.Unidad,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resources.NewIngredienteResource(ingrediente))
}

// DeleteIngrediente godoc
// @Summary Eliminar un ingrediente
// @Tags ingredientes
// @Produce json
// @Param id path int true "ID del ingrediente"
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /ingredientes/{id} [delete]
func (c *ingredienteController) DeleteIngrediente(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "Ingrediente")
	if err != nil {
		respondError(ctx, err)
		return
	}

	ingrediente, err := c.ingredientes.Find(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	if !policies.CanModifyIngrediente(user, ingrediente.Receta) {
		respondError(ctx, &models.AuthorizationError{Message: "Solo puedes modificar ingredientes de tus propias recetas"})
		return
	}

	if err := c.ingredientes.Delete(ingrediente); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Ingrediente eliminado"})
}
