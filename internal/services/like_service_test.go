package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recetario-app/recetario-api/internal/models"
)

func TestLikeService_Toggle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLikeService(db)
	owner := createTestUser(t, db, "owner@example.com", models.RoleUser)
	fan := createTestUser(t, db, "fan@example.com", models.RoleUser)
	receta := createTestReceta(t, db, owner.ID, "Salmorejo")

	// First toggle creates the like
	result, err := svc.Toggle(fan.ID, receta.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikesCount)

	// Second toggle removes it
	result, err = svc.Toggle(fan.ID, receta.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(0), result.LikesCount)

	// Third toggle likes again
	result, err = svc.Toggle(fan.ID, receta.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikesCount)
}

func TestLikeService_Toggle_IndependentUsers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLikeService(db)
	owner := createTestUser(t, db, "owner@example.com", models.RoleUser)
	fan1 := createTestUser(t, db, "fan1@example.com", models.RoleUser)
	fan2 := createTestUser(t, db, "fan2@example.com", models.RoleUser)
	receta := createTestReceta(t, db, owner.ID, "Escalivada")

	_, err := svc.Toggle(fan1.ID, receta.ID)
	require.NoError(t, err)

	result, err := svc.Toggle(fan2.ID, receta.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(2), result.LikesCount)

	// fan1 unliking does not touch fan2's like
	result, err = svc.Toggle(fan1.ID, receta.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(1), result.LikesCount)
}

func TestLikeService_Count_IsLive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLikeService(db)
	owner := createTestUser(t, db, "owner@example.com", models.RoleUser)
	receta := createTestReceta(t, db, owner.ID, "Marmitako")

	count, err := svc.Count(receta.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	fan := createTestUser(t, db, "fan@example.com", models.RoleUser)
	require.NoError(t, db.Create(&models.Like{UserID: fan.ID, RecetaID: receta.ID}).Error)

	count, err = svc.Count(receta.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLikeService_IsLikedBy(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLikeService(db)
	owner := createTestUser(t, db, "owner@example.com", models.RoleUser)
	fan := createTestUser(t, db, "fan@example.com", models.RoleUser)
	receta := createTestReceta(t, db, owner.ID, "Callos")

	liked, err := svc.IsLikedBy(fan.ID, receta.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = svc.Toggle(fan.ID, receta.ID)
	require.NoError(t, err)

	liked, err = svc.IsLikedBy(fan.ID, receta.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikeService_ListByReceta_LoadsAuthors(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLikeService(db)
	owner := createTestUser(t, db, "owner@example.com", models.RoleUser)
	fan := createTestUser(t, db, "fan@example.com", models.RoleUser)
	receta := createTestReceta(t, db, owner.ID, "Fideuá")

	_, err := svc.Toggle(fan.ID, receta.ID)
	require.NoError(t, err)

	likes, err := svc.ListByReceta(receta.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	require.NotNil(t, likes[0].User)
	assert.Equal(t, fan.Email, likes[0].User.Email)
}

func TestLike_UniqueIndexBackstop(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@example.com", models.RoleUser)
	fan := createTestUser(t, db, "fan@example.com", models.RoleUser)
	receta := createTestReceta(t, db, owner.ID, "Porra antequerana")

	// A racing insert that beats the toggle's existence check must be
	// rejected by the composite unique index.
	require.NoError(t, db.Create(&models.Like{UserID: fan.ID, RecetaID: receta.ID}).Error)

	err := db.Create(&models.Like{UserID: fan.ID, RecetaID: receta.ID}).Error
	require.Error(t, err)
}
