package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/recetario-app/recetario-api/internal/auth"
	"github.com/recetario-app/recetario-api/internal/models"
)

// RegisterInput is the validated payload for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService implements registration, login and the token lifecycle.
type AuthService struct {
	db     *gorm.DB
	tokens *auth.TokenService
}

// NewAuthService creates an AuthService.
func NewAuthService(db *gorm.DB, tokens *auth.TokenService) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register creates an account and returns it with a fresh access token.
// Duplicate emails surface as a field-level validation error.
func (s *AuthService) Register(input RegisterInput) (*models.Usuario, string, error) {
	var count int64
	if err := s.db.Model(&models.Usuario{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, "", models.NewValidationError("email", "El email ya está registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.Usuario{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Role:     models.RoleUser,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	log.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered")

	return user, token, nil
}

// Login verifies credentials and issues a new access token. Wrong email and
// wrong password produce the same error.
func (s *AuthService) Login(email, password string) (*models.Usuario, string, error) {
	var user models.Usuario
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", &models.AuthenticationError{Message: "Credenciales inválidas"}
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", &models.AuthenticationError{Message: "Credenciales inválidas"}
	}

	token, err := s.tokens.Issue(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Logout revokes the token that authenticated the request.
func (s *AuthService) Logout(tokenID string) error {
	return s.tokens.Revoke(tokenID)
}

// Refresh rotates the caller's token: the old one is revoked before the new
// one is returned.
func (s *AuthService) Refresh(user *models.Usuario, tokenID string) (string, error) {
	if err := s.tokens.Revoke(tokenID); err != nil {
		return "", fmt.Errorf("failed to revoke token: %w", err)
	}
	return s.tokens.Issue(user)
}
