package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recetario-app/recetario-api/internal/models"
)

// ComentarioService implements comment CRUD under a recipe.
type ComentarioService struct {
	db *gorm.DB
}

// NewComentarioService creates a ComentarioService.
func NewComentarioService(db *gorm.DB) *ComentarioService {
	return &ComentarioService{db: db}
}

// ListByReceta returns the comments of a recipe, newest first, with their
// authors loaded.
func (s *ComentarioService) ListByReceta(recetaID uint) ([]models.Comentario, error) {
	var comentarios []models.Comentario
	err := s.db.Preload("User").Where("receta_id = ?", recetaID).Order("created_at DESC").Find(&comentarios).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comentarios, nil
}

// Find loads a comment by id.
func (s *ComentarioService) Find(id uint) (*models.Comentario, error) {
	var comentario models.Comentario
	err := s.db.Preload("User").First(&comentario, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "Comentario"}
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return &comentario, nil
}

// Create adds a comment to a recipe on behalf of the user.
func (s *ComentarioService) Create(recetaID, userID uint, texto string) (*models.Comentario, error) {
	comentario := &models.Comentario{
		RecetaID: recetaID,
		UserID:   userID,
		Texto:    texto,
	}
	if err := s.db.Create(comentario).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	if err := s.db.Preload("User").First(comentario, comentario.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload comment: %w", err)
	}
	return comentario, nil
}

// Update replaces the comment text.
func (s *ComentarioService) Update(comentario *models.Comentario, texto string) error {
	comentario.Texto = texto
	// The struct carries its preloaded author; keep the save to this row only.
	if err := s.db.Omit(clause.Associations).Save(comentario).Error; err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return nil
}

// Delete removes a comment.
func (s *ComentarioService) Delete(comentario *models.Comentario) error {
	if err := s.db.Delete(comentario).Error; err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
