package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/recetario-app/recetario-api/internal/middleware"
	"github.com/recetario-app/recetario-api/internal/models"
	"github.com/recetario-app/recetario-api/internal/policies"
	"github.com/recetario-app/recetario-api/internal/resources"
	"github.com/recetario-app/recetario-api/internal/services"
)

// RecetaController handles HTTP requests related to recipes
type RecetaController interface {
	// ListRecetas retrieves a filtered, paginated recipe listing
	ListRecetas(ctx *gin.Context)
	// GetReceta retrieves the full detail of one recipe
	GetReceta(ctx *gin.Context)
	// CreateReceta creates a new recipe, optionally with an image
	CreateReceta(ctx *gin.Context)
	// UpdateReceta updates an existing recipe
	UpdateReceta(ctx *gin.Context)
	// DeleteReceta deletes a recipe and everything it owns
	DeleteReceta(ctx *gin.Context)
}

type recetaController struct {
	recetas  *services.RecetaService
	likes    *services.LikeService
	validate *validator.Validate
}

// NewRecetaController creates a new instance of RecetaController
func NewRecetaController(recetas *services.RecetaService, likes *services.LikeService, validate *validator.Validate) *recetaController {
	return &recetaController{recetas: recetas, likes: likes, validate: validate}
}

// CreateRecetaRequest is the multipart payload for creating a recipe.
type CreateRecetaRequest struct {
	Titulo        string `form:"titulo" validate:"required,max=200"`
	Descripcion   string `form:"descripcion" validate:"required"`
	Instrucciones string `form:"instrucciones" validate:"required"`
}

// UpdateRecetaRequest updates only the fields that were sent.
type UpdateRecetaRequest struct {
	Titulo        *string `form:"titulo" json:"titulo" validate:"omitempty,max=200"`
	Descripcion   *string `form:"descripcion" json:"descripcion"`
	Instrucciones *string `form:"instrucciones" json:"instrucciones"`
	Publicada     *bool   `form:"publicada" json:"publicada"`
}

// parseIDParam resolves the numeric id path parameter. Anything that is not a
// positive integer behaves like a missing entity.
func parseIDParam(ctx *gin.Context, resource string) (uint, error) {
	raw := ctx.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, &models.NotFoundError{Resource: resource}
	}
	return uint(id), nil
}

// imagenFile returns the uploaded imagen file when present.
func imagenFile(ctx *gin.Context) *multipart.FileHeader {
	file, err := ctx.FormFile("imagen")
	if err != nil {
		return nil
	}
	return file
}

// ListRecetas godoc
// @Summary Listar recetas
// @Description Obtiene un listado paginado de recetas con filtros opcionales
// @Tags recetas
// @Produce json
// @Param q query string false "Búsqueda en título y descripción"
// @Param ingrediente query string false "Filtrar por nombre de ingrediente"
// @Param min_likes query int false "Número mínimo de likes"
// @Param sort query string false "popular, titulo, created_at; prefijo '-' para descendente"
// @Param page query int false "Número de página"
// @Param per_page query int false "Resultados por página (máximo 50)"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /recetas [get]
func (c *recetaController) ListRecetas(ctx *gin.Context) {
	minLikes, _ := strconv.Atoi(ctx.Query("min_likes"))
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(ctx.DefaultQuery("per_page", "10"))

	filters := services.RecetaFilters{
		Q:           ctx.Query("q"),
		Ingrediente: ctx.Query("ingrediente"),
		MinLikes:    minLikes,
		Sort:        ctx.Query("sort"),
		Page:        page,
		PerPage:     perPage,
	}

	rows, pagination, err := c.recetas.List(filters)
	if err != nil {
		respondError(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	likedByUser := map[uint]bool{}
	if user != nil {
		ids := make([]uint, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.ID)
		}
		likedByUser, err = c.likes.LikedRecetaIDs(user.ID, ids)
		if err != nil {
			respondError(ctx, err)
			return
		}
	}

	data := make([]resources.RecetaResource, 0, len(rows))
	for i := range rows {
		var liked *bool
		if user != nil {
			value := likedByUser[rows[i].ID]
			liked = &value
		}
		data = append(data, resources.NewRecetaResource(&rows[i].Receta, rows[i].LikesCount, liked, c.recetas.ImageURL))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": gin.H{
			"current_page": pagination.Page,
			"per_page":     pagination.PerPage,
			"total":        pagination.Total,
			"last_page":    pagination.LastPage,
		},
	})
}

// GetReceta godoc
// @Summary Ver una receta
// @Description Obtiene los detalles completos de una receta incluyendo ingredientes, likes y comentarios
// @Tags recetas
// @Produce json
// @Param id path int true "ID de la receta"
// @Success 200 {object} resources.RecetaResource
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /recetas/{id} [get]
func (c *recetaController) GetReceta(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "Receta")
	if err != nil {
		respondError(ctx, err)
		return
	}

	receta, err := c.recetas.FindDetail(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	likesCount, err := c.likes.Count(receta.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var liked *bool
	if user := middleware.CurrentUser(ctx); user != nil {
		value, err := c.likes.IsLikedBy(user.ID, receta.ID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		liked = &value
	}

	ctx.JSON(http.StatusOK, resources.NewRecetaResource(receta, likesCount, liked, c.recetas.ImageURL))
}

// CreateReceta godoc
// @Summary Crear una receta
// @Description Crea una nueva receta. Puede incluir imagen del plato (jpeg, png, jpg, máx 2MB)
// @Tags recetas
// @Accept mpfd
// @Produce json
// @Param titulo formData string true "Título"
// @Param descripcion formData string true "Descripción"
// @Param instrucciones formData string true "Instrucciones"
// @Param imagen formData file false "Imagen del plato"
// @Success 201 {object} resources.RecetaResource
// @Failure 401 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /recetas [post]
func (c *recetaController) CreateReceta(ctx *gin.Context) {
	var req CreateRecetaRequest
	if err := ctx.ShouldBind(&req); err != nil {
		respondError(ctx, models.NewValidationError("_", "El cuerpo de la petición no es válido"))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidation(ctx, err)
		return
	}

	user := middleware.CurrentUser(ctx)
	receta, err := c.recetas.Create(user.ID, services.CreateRecetaInput{
		Titulo:        req.Titulo,
		Descripcion:   req.Descripcion,
		Instrucciones: req.Instrucciones,
		Imagen:        imagenFile(ctx),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resources.NewRecetaResource(receta, 0, nil, c.recetas.ImageURL))
}

// UpdateReceta godoc
// @Summary Actualizar una receta
// @Description Actualiza los datos de una receta. Solo el propietario o admin; bloqueado si está publicada
// @Tags recetas
// @Accept mpfd
// @Produce json
// @Param id path int true "ID de la receta"
// @Param titulo formData string false "Título"
// @Param descripcion formData string false "Descripción"
// @Param instrucciones formData string false "Instrucciones"
// @Param imagen formData file false "Imagen del plato"
// @Success 200 {object} resources.RecetaResource
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /recetas/{id} [put]
func (c *recetaController) UpdateReceta(ctx *gin.Context) {
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
	if !policies.CanUpdateReceta(user, receta) {
		respondError(ctx, &models.AuthorizationError{Message: "Solo puedes modificar tus propias recetas"})
		return
	}

	var req UpdateRecetaRequest
	if err := ctx.ShouldBind(&req); err != nil {
		respondError(ctx, models.NewValidationError("_", "El cuerpo de la petición no es válido"))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidation(ctx, err)
		return
	}

	err = c.recetas.Update(receta, services.UpdateRecetaInput{
		Titulo:        req.Titulo,
		Descripcion:   req.Descripcion,
		Instrucciones: req.Instrucciones,
		Publicada:     req.Publicada,
		Imagen:        imagenFile(ctx),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	likesCount, err := c.likes.Count(receta.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resources.NewRecetaResource(receta, likesCount, nil, c.recetas.ImageURL))
}

// DeleteReceta godoc
// @Summary Eliminar una receta
// @Description Elimina una receta junto con sus ingredientes, likes, comentarios y su imagen
// @Tags recetas
// @Produce json
// @Param id path int true "ID de la receta"
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /recetas/{id} [delete]
func (c *recetaController) DeleteReceta(ctx *gin.Context) {
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
	if !policies.CanDeleteReceta(user, receta) {
		respondError(ctx, &models.AuthorizationError{Message: "Solo puedes eliminar tus propias recetas"})
		return
	}

	if err := c.recetas.Delete(receta); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Receta eliminada"})
}
