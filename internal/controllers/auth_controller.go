package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/recetario-app/recetario-api/internal/middleware"
	"github.com/recetario-app/recetario-api/internal/models"
	"github.com/recetario-app/recetario-api/internal/resources"
	"github.com/recetario-app/recetario-api/internal/services"
)

// AuthController handles registration, login and the token lifecycle
type AuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
	Refresh(ctx *gin.Context)
}

type authController struct {
	service  *services.AuthService
	validate *validator.Validate
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(service *services.AuthService, validate *validator.Validate) *authController {
	return &authController{service: service, validate: validate}
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,max=60"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Registrar un nuevo usuario
// @Description Crea una nueva cuenta de usuario y devuelve un token de autenticación
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Datos de registro"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} models.APIError
// @Router /auth/register [post]
func (c *authController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, models.NewValidationError("_", "El cuerpo de la petición no es válido"))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidation(ctx, err)
		return
	}

	user, token, err := c.service.Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"user":  resources.NewUsuarioResource(user),
		"token": token,
	})
}

// Login godoc
// @Summary Iniciar sesión
// @Description Autentica un usuario con email y contraseña, retorna un token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credenciales"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /auth/login [post]
func (c *authController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, models.NewValidationError("_", "El cuerpo de la petición no es válido"))
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidation(ctx, err)
		return
	}

	user, token, err := c.service.Login(req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":  resources.NewUsuarioResource(user),
		"token": token,
	})
}

// Logout godoc
// @Summary Cerrar sesión
// @Description Invalida el token de autenticación actual
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /auth/logout [post]
func (c *authController) Logout(ctx *gin.Context) {
	if err := c.service.Logout(middleware.TokenID(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada con éxito"})
}

// Me godoc
// @Summary Usuario autenticado
// @Description Devuelve el usuario propietario del token actual
// @Tags auth
// @Produce json
// @Success 200 {object} resources.UsuarioResource
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /auth/me [get]
func (c *authController) Me(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	ctx.JSON(http.StatusOK, resources.NewUsuarioResource(user))
}

// Refresh godoc
// @Summary Refrescar token de autenticación
// @Description Invalida el token actual y genera uno nuevo
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /auth/refresh [post]
func (c *authController) Refresh(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	token, err := c.service.Refresh(user, middleware.TokenID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
