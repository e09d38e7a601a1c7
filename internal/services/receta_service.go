package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/recetario-app/recetario-api/internal/models"
	"github.com/recetario-app/recetario-api/internal/storage"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

const (
	defaultPerPage = 10
	maxPerPage     = 50

	// Correlated count keeps the popularity sort and min_likes filter in a
	// single query, portable across postgres and sqlite.
	likesCountExpr = "(SELECT COUNT(*) FROM likes WHERE likes.receta_id = recetas.id)"
)

// RecetaFilters carries the query-string filters of the recipe listing.
type RecetaFilters struct {
	Q           string
	Ingrediente string
	MinLikes    int
	Sort        string
	Page        int
	PerPage     int
}

// RecetaConLikes is a listing row: the recipe plus its live like count.
type RecetaConLikes struct {
	models.Receta
	LikesCount int64
}

// Pagination reports the slice of the listing that was actually served,
// after defaults and the per-page clamp were applied.
type Pagination struct {
	Page     int
	PerPage  int
	Total    int64
	LastPage int64
}

// CreateRecetaInput is the validated payload for creating a recipe.
type CreateRecetaInput struct {
	Titulo        string
	Descripcion   string
	Instrucciones string
	Imagen        *multipart.FileHeader
}

// UpdateRecetaInput updates only the fields that were sent.
type UpdateRecetaInput struct {
	Titulo        *string
	Descripcion   *string
	Instrucciones *string
	Publicada     *bool
	Imagen        *multipart.FileHeader
}

// RecetaService implements recipe listing, CRUD and the publication rule.
type RecetaService struct {
	db      *gorm.DB
	storage storage.Storage
}

// NewRecetaService creates a RecetaService.
func NewRecetaService(db *gorm.DB, store storage.Storage) *RecetaService {
	return &RecetaService{db: db, storage: store}
}

// AssertCanBeModified enforces the publication rule: published recipes are
// frozen.
func (s *RecetaService) AssertCanBeModified(receta *models.Receta) error {
	if receta.Publicada {
		return &models.DomainRuleError{Message: "No se puede modificar una receta ya publicada"}
	}
	return nil
}

// ImageURL resolves a stored image path to its public URL.
func (s *RecetaService) ImageURL(path string) string {
	return s.storage.URL(path)
}

// List returns a page of recipes matching the filters plus the pagination
// that was served, with the total counted before pagination.
func (s *RecetaService) List(filters RecetaFilters) ([]RecetaConLikes, Pagination, error) {
	base := s.db.Model(&models.Receta{})

	if filters.Q != "" {
		pattern := "%" + strings.ToLower(filters.Q) + "%"
		base = base.Where("LOWER(recetas.titulo) LIKE ? OR LOWER(recetas.descripcion) LIKE ?", pattern, pattern)
	}

	if filters.Ingrediente != "" {
		pattern := "%" + strings.ToLower(filters.Ingrediente) + "%"
		base = base.Where(
			"EXISTS (SELECT 1 FROM ingredientes WHERE ingredientes.receta_id = recetas.id AND LOWER(ingredientes.nombre) LIKE ?)",
			pattern,
		)
	}

	if filters.MinLikes > 0 {
		base = base.Where(likesCountExpr+" >= ?", filters.MinLikes)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count recipes: %w", err)
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	perPage := filters.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	lastPage := (total + int64(perPage) - 1) / int64(perPage)
	if lastPage < 1 {
		lastPage = 1
	}

	query := base.Session(&gorm.Session{}).
		Select("recetas.*, " + likesCountExpr + " AS likes_count").
		Order(orderClause(filters.Sort)).
		Limit(perPage).
		Offset((page - 1) * perPage)

	var rows []RecetaConLikes
	if err := query.Find(&rows).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list recipes: %w", err)
	}

	return rows, Pagination{Page: page, PerPage: perPage, Total: total, LastPage: lastPage}, nil
}

// orderClause maps the sort parameter to SQL. Popularity always sorts
// descending, with or without the '-' prefix; unknown fields fall back to
// newest first.
func orderClause(sort string) string {
	switch sort {
	case "popular", "-popular":
		return "likes_count DESC, recetas.created_at DESC"
	case "titulo":
		return "recetas.titulo ASC"
	case "-titulo":
		return "recetas.titulo DESC"
	case "created_at":
		return "recetas.created_at ASC"
	default:
		return "recetas.created_at DESC"
	}
}

// Find loads a recipe by id.
func (s *RecetaService) Find(id uint) (*models.Receta, error) {
	var receta models.Receta
	if err := s.db.First(&receta, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "Receta"}
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}
	return &receta, nil
}

// FindDetail loads a recipe with its ingredients and comments (with authors)
// for the detail response.
func (s *RecetaService) FindDetail(id uint) (*models.Receta, error) {
	var receta models.Receta
	err := s.db.
		Preload("Ingredientes").
		Preload("Comentarios").
		Preload("Comentarios.User").
		First(&receta, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "Receta"}
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}
	return &receta, nil
}

// Create stores the optional image first, then the row; the image is removed
// again if the insert fails so no orphan files accumulate.
func (s *RecetaService) Create(userID uint, input CreateRecetaInput) (*models.Receta, error) {
	var imagenURL string
	if input.Imagen != nil {
		path, err := s.storage.SaveImage(input.Imagen, "recetas")
		if err != nil {
			return nil, err
		}
		imagenURL = path
	}

	receta := &models.Receta{
		UserID:        userID,
		Titulo:        input.Titulo,
		Descripcion:   input.Descripcion,
		Instrucciones: input.Instrucciones,
		ImagenURL:     imagenURL,
	}

	if err := s.db.Create(receta).Error; err != nil {
		if imagenURL != "" {
			if delErr := s.storage.Delete(imagenURL); delErr != nil {
				log.WithError(delErr).WithField("path", imagenURL).Warn("Failed to clean up image after insert failure")
			}
		}
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return receta, nil
}

// Update applies the provided fields. Published recipes reject any update.
func (s *RecetaService) Update(receta *models.Receta, input UpdateRecetaInput) error {
	if err := s.AssertCanBeModified(receta); err != nil {
		return err
	}

	if input.Imagen != nil {
		path, err := s.storage.SaveImage(input.Imagen, "recetas")
		if err != nil {
			return err
		}
		if receta.ImagenURL != "" {
			if delErr := s.storage.Delete(receta.ImagenURL); delErr != nil {
				log.WithError(delErr).WithField("path", receta.ImagenURL).Warn("Failed to delete replaced image")
			}
		}
		receta.ImagenURL = path
	}

	if input.Titulo != nil {
		receta.Titulo = *input.Titulo
	}
	if input.Descripcion != nil {
		receta.Descripcion = *input.Descripcion
	}
	if input.Instrucciones != nil {
		receta.Instrucciones = *input.Instrucciones
	}
	if input.Publicada != nil {
		receta.Publicada = *input.Publicada
	}

	if err := s.db.Save(receta).Error; err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	return nil
}

// Delete removes the recipe and everything hanging off it in one transaction.
// The image file is removed afterwards; a failure there is logged, not
// surfaced, since the row is already gone.
func (s *RecetaService) Delete(receta *models.Receta) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("receta_id = ?", receta.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("receta_id = ?", receta.ID).Delete(&models.Comentario{}).Error; err != nil {
			return err
		}
		if err := tx.Where("receta_id = ?", receta.ID).Delete(&models.Ingrediente{}).Error; err != nil {
			return err
		}
		return tx.Delete(receta).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	if receta.ImagenURL != "" {
		if delErr := s.storage.Delete(receta.ImagenURL); delErr != nil {
			log.WithError(delErr).WithField("path", receta.ImagenURL).Warn("Failed to delete recipe image")
		}
	}

	return nil
}
