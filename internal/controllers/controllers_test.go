package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/recetario-app/recetario-api/internal/auth"
	"github.com/recetario-app/recetario-api/internal/middleware"
	"github.com/recetario-app/recetario-api/internal/models"
	"github.com/recetario-app/recetario-api/internal/services"
	"github.com/recetario-app/recetario-api/internal/storage"
)

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
}

// newTestApp wires the full HTTP surface against a throwaway database, the
// same way main does.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Usuario{},
		&models.Receta{},
		&models.Ingrediente{},
		&models.Like{},
		&models.Comentario{},
		&models.TokenAcceso{},
	))

	tokens := auth.NewTokenService("test-secret", 2*time.Hour, auth.NewGormTokenStore(db))
	imageStorage := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/storage")
	validate := NewValidator()

	authSvc := services.NewAuthService(db, tokens)
	recetaSvc := services.NewRecetaService(db, imageStorage)
	ingredienteSvc := services.NewIngredienteService(db)
	comentarioSvc := services.NewComentarioService(db)
	likeSvc := services.NewLikeService(db)

	authCtl := NewAuthController(authSvc, validate)
	recetaCtl := NewRecetaController(recetaSvc, likeSvc, validate)
	ingredienteCtl := NewIngredienteController(ingredienteSvc, recetaSvc, validate)
	comentarioCtl := NewComentarioController(comentarioSvc, recetaSvc, validate)
	likeCtl := NewLikeController(likeSvc, recetaSvc)

	requireAuth := middleware.RequireAuth(tokens, db)

	router := gin.New()
	router.POST("/auth/register", authCtl.Register)
	router.POST("/auth/login", authCtl.Login)
	authGroup := router.Group("/auth", requireAuth)
	authGroup.POST("/logout", authCtl.Logout)
	authGroup.GET("/me", authCtl.Me)
	authGroup.POST("/refresh", authCtl.Refresh)

	api := router.Group("", requireAuth)
	api.GET("/recetas", recetaCtl.ListRecetas)
	api.POST("/recetas", recetaCtl.CreateReceta)
	api.GET("/recetas/:id", recetaCtl.GetReceta)
	api.PUT("/recetas/:id", recetaCtl.UpdateReceta)
	api.DELETE("/recetas/:id", recetaCtl.DeleteReceta)
	api.GET("/recetas/:id/ingredientes", ingredienteCtl.ListIngredientes)
	api.POST("/recetas/:id/ingredientes", ingredienteCtl.CreateIngrediente)
	api.GET("/ingredientes/:id", ingredienteCtl.GetIngrediente)
	api.PUT("/ingredientes/:id", ingredienteCtl.UpdateIngrediente)
	api.DELETE("/ingredientes/:id", ingredienteCtl.DeleteIngrediente)
	api.POST("/recetas/:id/like", likeCtl.ToggleLike)
	api.GET("/recetas/:id/likes", likeCtl.ListLikes)
	api.GET("/recetas/:id/likes/count", likeCtl.CountLikes)
	api.GET("/recetas/:id/comentarios", comentarioCtl.ListComentarios)
	api.POST("/recetas/:id/comentarios", comentarioCtl.CreateComentario)
	api.GET("/comentarios/:id", comentarioCtl.GetComentario)
	api.PUT("/comentarios/:id", comentarioCtl.UpdateComentario)
	api.DELETE("/comentarios/:id", comentarioCtl.DeleteComentario)

	return &testApp{router: router, db: db}
}

func (a *testApp) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) doMultipart(t *testing.T, method, path, token string, fields map[string]string, imageName string, image []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if image != nil {
		part, err := writer.CreateFormFile("imagen", imageName)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// registerUser registers an account through the API and returns its token.
func (a *testApp) registerUser(t *testing.T, name, email string) string {
	t.Helper()

	w := a.doJSON(t, http.MethodPost, "/auth/register", "", gin.H{
		"name":                  name,
		"email":                 email,
		"password":              "password123",
		"password_confirmation": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// promoteToAdmin flips the role directly in the database.
func (a *testApp) promoteToAdmin(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, a.db.Model(&models.Usuario{}).Where("email = ?", email).Update("role", models.RoleAdmin).Error)
}

func (a *testApp) createReceta(t *testing.T, token, titulo string) uint {
	t.Helper()

	w := a.doMultipart(t, http.MethodPost, "/recetas", token, map[string]string{
		"titulo":        titulo,
		"descripcion":   "Descripción de " + titulo,
		"instrucciones": "Instrucciones de " + titulo,
	}, "", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

var pngUpload = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 32)...)

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/recetas"},
		{http.MethodPost, "/recetas"},
		{http.MethodGet, "/auth/me"},
		{http.MethodPost, "/recetas/1/like"},
	}

	for _, p := range paths {
		w := app.doJSON(t, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	t.Run("short password and missing confirmation", func(t *testing.T) {
		w := app.doJSON(t, http.MethodPost, "/auth/register", "", gin.H{
			"name":     "Ana",
			"email":    "ana@example.com",
			"password": "corta",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		body := decodeBody(t, w)
		errors := body["errors"].(map[string]interface{})
		assert.Contains(t, errors, "password")
		assert.Contains(t, errors, "password_confirmation")
	})

	t.Run("duplicate email", func(t *testing.T) {
		app.registerUser(t, "Ana", "dup@example.com")

		w := app.doJSON(t, http.MethodPost, "/auth/register", "", gin.H{
			"name":                  "Otra Ana",
			"email":                 "dup@example.com",
			"password":              "password123",
			"password_confirmation": "password123",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		errors := decodeBody(t, w)["errors"].(map[string]interface{})
		assert.Contains(t, errors, "email")
	})
}

func TestLoginAndMe(t *testing.T) {
	app := newTestApp(t)
	app.registerUser(t, "Luis", "luis@example.com")

	w := app.doJSON(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "luis@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	me := app.doJSON(t, http.MethodGet, "/auth/me", resp.Token, nil)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Equal(t, "luis@example.com", decodeBody(t, me)["email"])

	bad := app.doJSON(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "luis@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, bad.Code)
}

func TestLogoutKillsToken(t *testing.T) {
	app := newTestApp(t)
	token := app.registerUser(t, "Ana", "ana@example.com")

	w := app.doJSON(t, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	after := app.doJSON(t, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, after.Code)
}

func TestRefreshRotatesToken(t *testing.T) {
	app := newTestApp(t)
	token := app.registerUser(t, "Ana", "ana@example.com")

	w := app.doJSON(t, http.MethodPost, "/auth/refresh", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	newToken := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, newToken)
	assert.NotEqual(t, token, newToken)

	// Old token is revoked, new one works
	old := app.doJSON(t, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, old.Code)

	fresh := app.doJSON(t, http.MethodGet, "/auth/me", newToken, nil)
	assert.Equal(t, http.StatusOK, fresh.Code)
}

func TestCreateReceta_ImageRules(t *testing.T) {
	app := newTestApp(t)
	token := app.registerUser(t, "Chef", "chef@example.com")

	fields := map[string]string{
		"titulo":        "Paella",
		"descripcion":   "Arroz con azafrán",
		"instrucciones": "Cocer a fuego lento",
	}

	t.Run("png accepted", func(t *testing.T) {
		w := app.doMultipart(t, http.MethodPost, "/recetas", token, fields, "foto.png", pngUpload)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		imagenURL := decodeBody(t, w)["imagen_url"].(string)
		assert.Contains(t, imagenURL, "http://localhost:8080/storage/recetas/")
	})

	t.Run("pdf rejected with field error", func(t *testing.T) {
		pdf := append([]byte("%PDF-1.4"), make([]byte, 32)...)
		w := app.doMultipart(t, http.MethodPost, "/recetas", token, fields, "doc.pdf", pdf)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		errors := decodeBody(t, w)["errors"].(map[string]interface{})
		assert.Contains(t, errors, "imagen")
	})

	t.Run("oversized image rejected", func(t *testing.T) {
		big := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, storage.MaxImageSize)...)
		w := app.doMultipart(t, http.MethodPost, "/recetas", token, fields, "big.png", big)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		errors := decodeBody(t, w)["errors"].(map[string]interface{})
		assert.Contains(t, errors, "imagen")
	})

	t.Run("missing titulo rejected", func(t *testing.T) {
		w := app.doMultipart(t, http.MethodPost, "/recetas", token, map[string]string{
			"descripcion":   "Sin título",
			"instrucciones": "N/A",
		}, "", nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		errors := decodeBody(t, w)["errors"].(map[string]interface{})
		assert.Contains(t, errors, "titulo")
	})
}

func TestRecetaOwnership(t *testing.T) {
	app := newTestApp(t)
	ownerToken := app.registerUser(t, "Owner", "owner@example.com")
	strangerToken := app.registerUser(t, "Stranger", "stranger@example.com")
	app.registerUser(t, "Admin", "admin@example.com")
	app.promoteToAdmin(t, "admin@example.com")
	// Log in after the promotion so the token carries the admin role claim
	w := app.doJSON(t, http.MethodPost, "/auth/login", "", gin.H{"email": "admin@example.com", "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	adminToken := decodeBody(t, w)["token"].(string)

	recetaID := app.createReceta(t, ownerToken, "Gazpacho")
	path := fmt.Sprintf("/recetas/%d", recetaID)

	t.Run("stranger cannot update", func(t *testing.T) {
		w := app.doJSON(t, http.MethodPut, path, strangerToken, gin.H{"titulo": "Robado"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner can update", func(t *testing.T) {
		w := app.doJSON(t, http.MethodPut, path, ownerToken, gin.H{"titulo": "Gazpacho andaluz"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Gazpacho andaluz", decodeBody(t, w)["titulo"])
	})

	t.Run("admin can update someone else's recipe", func(t *testing.T) {
		w := app.doJSON(t, http.MethodPut, path, adminToken, gin.H{"descripcion": "Revisado por admin"})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		w := app.doJSON(t, http.MethodDelete, path, strangerToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestPublicationLockOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := app.registerUser(t, "Owner", "owner@example.com")
	recetaID := app.createReceta(t, token, "Salmorejo")
	path := fmt.Sprintf("/recetas/%d", recetaID)

	// Publish it
	w := app.doJSON(t, http.MethodPut, path, token, gin.H{"publicada": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Further edits are blocked with 409, even for the owner
	w = app.doJSON(t, http.MethodPut, path, token, gin.H{"titulo": "Salmorejo cordobés"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DOMAIN_RULE_VIOLATION", decodeBody(t, w)["code"])
}

func TestLikeToggleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	ownerToken := app.registerUser(t, "Owner", "owner@example.com")
	fanToken := app.registerUser(t, "Fan", "fan@example.com")
	recetaID := app.createReceta(t, ownerToken, "Fideuá")
	likePath := fmt.Sprintf("/recetas/%d/like", recetaID)

	// Like: 201
	w := app.doJSON(t, http.MethodPost, likePath, fanToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, float64(1), body["likes_count"])

	// Unlike: 200
	w = app.doJSON(t, http.MethodPost, likePath, fanToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["liked"])
	assert.Equal(t, float64(0), body["likes_count"])

	// Count endpoint reflects the live state
	w = app.doJSON(t, http.MethodPost, likePath, fanToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w = app.doJSON(t, http.MethodGet, likePath+"s/count", fanToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["likes_count"])

	// Likes listing carries the author name
	w = app.doJSON(t, http.MethodGet, fmt.Sprintf("/recetas/%d/likes", recetaID), fanToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	likes := body["likes"].([]interface{})
	require.Len(t, likes, 1)
	assert.Equal(t, "Fan", likes[0].(map[string]interface{})["user_name"])
}

func TestListRecetasFiltersAndLikedByUser(t *testing.T) {
	app := newTestApp(t)
	ownerToken := app.registerUser(t, "Owner", "owner@example.com")
	fanToken := app.registerUser(t, "Fan", "fan@example.com")

	paellaID := app.createReceta(t, ownerToken, "Paella Valenciana")
	app.createReceta(t, ownerToken, "Tortilla de patatas")

	w := app.doJSON(t, http.MethodPost, fmt.Sprintf("/recetas/%d/like", paellaID), fanToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("q filter narrows the listing", func(t *testing.T) {
		w := app.doJSON(t, http.MethodGet, "/recetas?q=paella", fanToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		data := body["data"].([]interface{})
		require.Len(t, data, 1)
		row := data[0].(map[string]interface{})
		assert.Equal(t, "Paella Valenciana", row["titulo"])
		assert.Equal(t, float64(1), row["likes_count"])
		assert.Equal(t, true, row["liked_by_user"])
	})

	t.Run("min_likes filter", func(t *testing.T) {
		w := app.doJSON(t, http.MethodGet, "/recetas?min_likes=1", fanToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].([]interface{})
		require.Len(t, data, 1)
	})

	t.Run("per_page is clamped", func(t *testing.T) {
		w := app.doJSON(t, http.MethodGet, "/recetas?per_page=500", fanToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		meta := decodeBody(t, w)["meta"].(map[string]interface{})
		assert.Equal(t, float64(50), meta["per_page"])
	})

	t.Run("meta reports the page actually served", func(t *testing.T) {
		w := app.doJSON(t, http.MethodGet, "/recetas?page=0&per_page=500", fanToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		meta := decodeBody(t, w)["meta"].(map[string]interface{})
		assert.Equal(t, float64(1), meta["current_page"])
		assert.Equal(t, float64(50), meta["per_page"])
		assert.Equal(t, float64(1), meta["last_page"])
	})
}

func TestIngredientesOverHTTP(t *testing.T) {
	app := newTestApp(t)
	ownerToken := app.registerUser(t, "Owner", "owner@example.com")
	strangerToken := app.registerUser(t, "Stranger", "stranger@example.com")
	recetaID := app.createReceta(t, ownerToken, "Paella")
	basePath := fmt.Sprintf("/recetas/%d/ingredientes", recetaID)

	t.Run("stranger cannot add ingredients", func(t *testing.T) {
		w := app.doJSON(t, http.MethodPost, basePath, strangerToken, gin.H{
			"nombre": "Veneno", "cantidad": "1", "unidad": "g",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("invalid unit rejected", func(t *testing.T) {
		w := app.doJSON(t, http.MethodPost, basePath, ownerToken, gin.H{
			"nombre": "Arroz", "cantidad": "400", "unidad": "toneladas",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		errors := decodeBody(t, w)["errors"].(map[string]interface{})
		assert.Contains(t, errors, "unidad")
	})

	t.Run("owner adds, updates and deletes", func(t *testing.T) {
		w := app.doJSON(t, http.MethodPost, basePath, ownerToken, gin.H{
			"nombre": "Arroz bomba", "cantidad": "400", "unidad": "g",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		id := uint(decodeBody(t, w)["id"].(float64))

		itemPath := fmt.Sprintf("/ingredientes/%d", id)
		w = app.doJSON(t, http.MethodPut, itemPath, ownerToken, gin.H{"cantidad": "500"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "500", decodeBody(t, w)["cantidad"])

		// Stranger cannot touch it through the parent recipe policy
		w = app.doJSON(t, http.MethodPut, itemPath, strangerToken, gin.H{"cantidad": "1"})
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = app.doJSON(t, http.MethodDelete, itemPath, ownerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = app.doJSON(t, http.MethodGet, basePath, ownerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Empty(t, list)
	})
}

func TestComentariosOverHTTP(t *testing.T) {
	app := newTestApp(t)
	ownerToken := app.registerUser(t, "Owner", "owner@example.com")
	visitorToken := app.registerUser(t, "Visitor", "visitor@example.com")
	recetaID := app.createReceta(t, ownerToken, "Cocido")
	basePath := fmt.Sprintf("/recetas/%d/comentarios", recetaID)

	// Any authenticated user can comment any recipe
	w := app.doJSON(t, http.MethodPost, basePath, visitorToken, gin.H{"texto": "Qué buena pinta"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	comentarioID := uint(body["id"].(float64))
	assert.Equal(t, "Visitor", body["user_name"])

	itemPath := fmt.Sprintf("/comentarios/%d", comentarioID)

	// The comment has its own detail endpoint
	w = app.doJSON(t, http.MethodGet, itemPath, ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decodeBody(t, w)
	assert.Equal(t, "Qué buena pinta", body["texto"])
	assert.Equal(t, "Visitor", body["user_name"])

	// The recipe owner is not the comment author: 403
	w = app.doJSON(t, http.MethodPut, itemPath, ownerToken, gin.H{"texto": "Editado"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The author can edit and delete
	w = app.doJSON(t, http.MethodPut, itemPath, visitorToken, gin.H{"texto": "Mejor aún"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mejor aún", decodeBody(t, w)["texto"])

	w = app.doJSON(t, http.MethodDelete, itemPath, visitorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Deleted comments stop resolving
	w = app.doJSON(t, http.MethodGet, itemPath, visitorToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.doJSON(t, http.MethodGet, basePath, visitorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestDeleteRecetaCascadesOverHTTP(t *testing.T) {
	app := newTestApp(t)
	ownerToken := app.registerUser(t, "Owner", "owner@example.com")
	fanToken := app.registerUser(t, "Fan", "fan@example.com")
	recetaID := app.createReceta(t, ownerToken, "Pisto")

	w := app.doJSON(t, http.MethodPost, fmt.Sprintf("/recetas/%d/ingredientes", recetaID), ownerToken, gin.H{
		"nombre": "Calabacín", "cantidad": "1", "unidad": "unit",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = app.doJSON(t, http.MethodPost, fmt.Sprintf("/recetas/%d/like", recetaID), fanToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w = app.doJSON(t, http.MethodPost, fmt.Sprintf("/recetas/%d/comentarios", recetaID), fanToken, gin.H{"texto": "Rico"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.doJSON(t, http.MethodDelete, fmt.Sprintf("/recetas/%d", recetaID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Receta eliminada", decodeBody(t, w)["message"])

	w = app.doJSON(t, http.MethodGet, fmt.Sprintf("/recetas/%d", recetaID), ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var counts [3]int64
	app.db.Model(&models.Ingrediente{}).Where("receta_id = ?", recetaID).Count(&counts[0])
	app.db.Model(&models.Like{}).Where("receta_id = ?", recetaID).Count(&counts[1])
	app.db.Model(&models.Comentario{}).Where("receta_id = ?", recetaID).Count(&counts[2])
	assert.Equal(t, [3]int64{0, 0, 0}, counts)
}

func TestGetRecetaDetail(t *testing.T) {
	app := newTestApp(t)
	ownerToken := app.registerUser(t, "Owner", "owner@example.com")
	recetaID := app.createReceta(t, ownerToken, "Paella")

	w := app.doJSON(t, http.MethodPost, fmt.Sprintf("/recetas/%d/ingredientes", recetaID), ownerToken, gin.H{
		"nombre": "Arroz", "cantidad": "400", "unidad": "g",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = app.doJSON(t, http.MethodPost, fmt.Sprintf("/recetas/%d/comentarios", recetaID), ownerToken, gin.H{"texto": "Mi favorita"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.doJSON(t, http.MethodGet, fmt.Sprintf("/recetas/%d", recetaID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.Equal(t, "Paella", body["titulo"])
	assert.Equal(t, float64(0), body["likes_count"])
	assert.Equal(t, false, body["liked_by_user"])
	assert.Equal(t, float64(1), body["comentarios_count"])
	require.Len(t, body["ingredientes"].([]interface{}), 1)
	require.Len(t, body["comentarios"].([]interface{}), 1)

	t.Run("missing recipe is 404", func(t *testing.T) {
		w := app.doJSON(t, http.MethodGet, "/recetas/9999", ownerToken, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", decodeBody(t, w)["code"])
	})

	t.Run("non-numeric id behaves like missing", func(t *testing.T) {
		w := app.doJSON(t, http.MethodGet, "/recetas/abc", ownerToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
