package auth

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/recetario-app/recetario-api/internal/models"
)

// TokenStore persists the server-side half of issued tokens. A token is only
// valid while its row exists; deleting the row revokes it immediately.
type TokenStore interface {
	Create(token *models.TokenAcceso) error
	Find(id string) (*models.TokenAcceso, error)
	Delete(id string) error
	DeleteExpired() error
}

type gormTokenStore struct {
	db *gorm.DB
}

// NewGormTokenStore creates a TokenStore backed by the tokens_acceso table.
func NewGormTokenStore(db *gorm.DB) TokenStore {
	return &gormTokenStore{db: db}
}

func (s *gormTokenStore) Create(token *models.TokenAcceso) error {
	return s.db.Create(token).Error
}

func (s *gormTokenStore) Find(id string) (*models.TokenAcceso, error) {
	var token models.TokenAcceso
	err := s.db.Where("id = ?", id).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (s *gormTokenStore) Delete(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.TokenAcceso{}).Error
}

func (s *gormTokenStore) DeleteExpired() error {
	return s.db.Where("expires_at < ?", time.Now()).Delete(&models.TokenAcceso{}).Error
}
