package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recetario-app/recetario-api/internal/models"
)

// IngredienteInput is the validated payload for creating an ingredient.
type IngredienteInput struct {
	Nombre   string
	Cantidad string
	Unidad   string
}

// UpdateIngredienteInput updates only the fields that were sent.
type UpdateIngredienteInput struct {
	Nombre   *string
	Cantidad *string
	Unidad   *string
}

// IngredienteService implements ingredient CRUD under a recipe.
type IngredienteService struct {
	db *gorm.DB
}

// NewIngredienteService creates an IngredienteService.
func NewIngredienteService(db *gorm.DB) *IngredienteService {
	return &IngredienteService{db: db}
}

// ListByReceta returns the ingredients of a recipe.
func (s *IngredienteService) ListByReceta(recetaID uint) ([]models.Ingrediente, error) {
	var ingredientes []models.Ingrediente
	err := s.db.Where("receta_id = ?", recetaID).Order("id ASC").Find(&ingredientes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return ingredientes, nil
}

// Find loads an ingredient with its parent recipe, which authorization
// resolves ownership through.
func (s *IngredienteService) Find(id uint) (*models.Ingrediente, error) {
	var ingrediente models.Ingrediente
	err := s.db.Preload("Receta").First(&ingrediente, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "Ingrediente"}
		}
		return nil, fmt.Errorf("failed to find ingredient: %w", err)
	}
	return &ingrediente, nil
}

// Create adds an ingredient to a recipe.
func (s *IngredienteService) Create(recetaID uint, input IngredienteInput) (*models.Ingrediente, error) {
	ingrediente := &models.Ingrediente{
		RecetaID: recetaID,
		Nombre:   input.Nombre,
		Cantidad: input.Cantidad,
		Unidad:   input.Unidad,
	}
	if err := s.db.Create(ingrediente).Error; err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}
	return ingrediente, nil
}

// Update applies the provided fields.
func (s *IngredienteService) Update(ingrediente *models.Ingrediente, input UpdateIngredienteInput) error {
	if input.Nombre != nil {
		ingrediente.Nombre = *input.Nombre
	}
	if input.Cantidad != nil {
		ingrediente.Cantidad = *input.Cantidad
	}
	if input.Unidad != nil {
		ingrediente.Unidad = *input.Unidad
	}
	// The struct carries its preloaded parent; keep the save to this row only.
	if err := s.db.Omit(clause.Associations).Save(ingrediente).Error; err != nil {
		return fmt.Errorf("failed to update ingredient: %w", err)
	}
	return nil
}

// Delete removes an ingredient.
func (s *IngredienteService) Delete(ingrediente *models.Ingrediente) error {
	if err := s.db.Delete(ingrediente).Error; err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	return nil
}
