package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/recetario-app/recetario-api/internal/auth"
	"github.com/recetario-app/recetario-api/internal/models"
)

const (
	currentUserKey = "currentUser"
	tokenIDKey     = "tokenID"
)

// RequireAuth validates the Bearer token on the request, loads the
// authenticated user and stores it in the Gin context. Requests without a
// live, signed token are rejected with 401 before the handler runs.
func RequireAuth(tokens *auth.TokenService, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			abortWithError(c, err)
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			abortWithError(c, err)
			return
		}

		var user models.Usuario
		if err := db.First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortWithError(c, &models.AuthenticationError{Message: "Token inválido o expirado"})
				return
			}
			abortWithError(c, err)
			return
		}

		c.Set(currentUserKey, &user)
		c.Set(tokenIDKey, claims.ID)
		c.Next()
	}
}

// extractBearerToken pulls the token out of the Authorization header,
// enforcing the Bearer scheme.
func extractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", &models.AuthenticationError{Message: "Se requiere un token de acceso"}
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", &models.AuthenticationError{Message: "El encabezado Authorization debe usar el esquema Bearer"}
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return "", &models.AuthenticationError{Message: "Se requiere un token de acceso"}
	}

	return tokenString, nil
}

func abortWithError(c *gin.Context, err error) {
	status, body := models.StatusFor(err)
	c.AbortWithStatusJSON(status, body)
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil when
// the request is anonymous.
func CurrentUser(c *gin.Context) *models.Usuario {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.Usuario)
	if !ok {
		return nil
	}
	return user
}

// TokenID returns the jti of the token that authenticated the request.
func TokenID(c *gin.Context) string {
	value, ok := c.Get(tokenIDKey)
	if !ok {
		return ""
	}
	id, _ := value.(string)
	return id
}
