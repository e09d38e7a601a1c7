package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/recetario-app/recetario-api/internal/models"
)

// ToggleResult reports the state after a like toggle.
type ToggleResult struct {
	Liked      bool
	LikesCount int64
}

// LikeService implements the like toggle and the like queries.
type LikeService struct {
	db *gorm.DB
}

// NewLikeService creates a LikeService.
func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// Toggle likes the recipe if the user has not liked it yet, or removes the
// like if they have. The composite unique index on (user_id, receta_id)
// backstops concurrent toggles; a create that loses the race reports a
// conflict instead of a duplicate row.
func (s *LikeService) Toggle(userID, recetaID uint) (*ToggleResult, error) {
	var existing models.Like
	err := s.db.Where("user_id = ? AND receta_id = ?", userID, recetaID).First(&existing).Error

	switch {
	case err == nil:
		if err := s.db.Delete(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to remove like: %w", err)
		}
		count, err := s.Count(recetaID)
		if err != nil {
			return nil, err
		}
		return &ToggleResult{Liked: false, LikesCount: count}, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		like := &models.Like{UserID: userID, RecetaID: recetaID}
		if err := s.db.Create(like).Error; err != nil {
			// Re-check: if the row appeared between the lookup and the
			// insert, the unique index fired and this was a lost race.
			var count int64
			s.db.Model(&models.Like{}).Where("user_id = ? AND receta_id = ?", userID, recetaID).Count(&count)
			if count > 0 {
				return nil, &models.ConflictError{Message: "El usuario ya ha dado like a esta receta"}
			}
			return nil, fmt.Errorf("failed to create like: %w", err)
		}
		count, err := s.Count(recetaID)
		if err != nil {
			return nil, err
		}
		return &ToggleResult{Liked: true, LikesCount: count}, nil

	default:
		return nil, fmt.Errorf("failed to look up like: %w", err)
	}
}

// Count returns the live like count of a recipe. Counts are never cached or
// denormalized.
func (s *LikeService) Count(recetaID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Like{}).Where("receta_id = ?", recetaID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// IsLikedBy reports whether the user has liked the recipe.
func (s *LikeService) IsLikedBy(userID, recetaID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Like{}).Where("user_id = ? AND receta_id = ?", userID, recetaID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

// LikedRecetaIDs returns which of the given recipes the user has liked, in a
// single query so listings avoid a per-row lookup.
func (s *LikeService) LikedRecetaIDs(userID uint, recetaIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(recetaIDs))
	if len(recetaIDs) == 0 {
		return liked, nil
	}

	var ids []uint
	err := s.db.Model(&models.Like{}).
		Where("user_id = ? AND receta_id IN ?", userID, recetaIDs).
		Pluck("receta_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load liked recipes: %w", err)
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// ListByReceta returns the likes of a recipe with their authors loaded.
func (s *LikeService) ListByReceta(recetaID uint) ([]models.Like, error) {
	var likes []models.Like
	err := s.db.Preload("User").Where("receta_id = ?", recetaID).Order("created_at DESC").Find(&likes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	return likes, nil
}
