package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/recetario-app/recetario-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Usuario{},
		&models.Receta{},
		&models.Ingrediente{},
		&models.Like{},
		&models.Comentario{},
		&models.TokenAcceso{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) *models.Usuario {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.Usuario{
		Name:     "Test User",
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestReceta(t *testing.T, db *gorm.DB, userID uint, titulo string) *models.Receta {
	t.Helper()

	receta := &models.Receta{
		UserID:        userID,
		Titulo:        titulo,
		Descripcion:   "Descripción de " + titulo,
		Instrucciones: "Instrucciones de " + titulo,
	}
	require.NoError(t, db.Create(receta).Error)
	return receta
}
