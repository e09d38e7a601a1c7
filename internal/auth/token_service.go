package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/recetario-app/recetario-api/internal/models"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Claims is the JWT payload carried by issued tokens. The jti (RegisteredClaims.ID)
// doubles as the primary key of the tokens_acceso row backing the token.
type Claims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates revocable bearer tokens. Tokens are HS256
// JWTs whose jti must match a live row in the store, so revocation works
// without waiting for exp.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	store  TokenStore
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string, ttl time.Duration, store TokenStore) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
	}
}

// Issue creates a signed token for the user and records its jti in the store.
func (s *TokenService) Issue(user *models.Usuario) (string, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	jti := uuid.New().String()

	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		log.WithError(err).Error("Failed to sign access token")
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	record := &models.TokenAcceso{
		ID:        jti,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}
	if err := s.store.Create(record); err != nil {
		log.WithError(err).Error("Failed to persist access token")
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"jti":     jti,
	}).Debug("Access token issued")

	return signed, nil
}

// Validate parses and verifies a token string. Beyond the signature and exp
// checks it requires the jti row to still exist, which is how logout and
// refresh invalidate tokens.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, &models.AuthenticationError{Message: "Token inválido o expirado"}
	}

	record, err := s.store.Find(claims.ID)
	if err != nil {
		return nil, err
	}
	if record == nil || record.ExpiresAt.Before(time.Now()) {
		return nil, &models.AuthenticationError{Message: "Token inválido o expirado"}
	}

	return claims, nil
}

// Revoke deletes the jti row, invalidating the token for future requests.
func (s *TokenService) Revoke(jti string) error {
	return s.store.Delete(jti)
}
