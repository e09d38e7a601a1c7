package models

import (
	"fmt"
	"net/http"
)

// Error code constants rendered in the "code" field of error responses.
const (
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrDomainRule       = "DOMAIN_RULE_VIOLATION"
)

// APIError is the wire shape every recovered error is rendered as.
type APIError struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// ValidationError reports malformed or missing input as a per-field message
// map. Rendered as 422.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

// AuthenticationError means the request carries no usable identity. Rendered
// as 401.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError means the caller is authenticated but not permitted.
// Rendered as 403, distinct from NotFoundError.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// NotFoundError means an entity id could not be resolved. Rendered as 404.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s no encontrado", e.Resource)
}

// ConflictError reports a uniqueness violation, e.g. a duplicate like racing
// past the existence check. Rendered as 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// DomainRuleError reports a business-rule violation such as editing a
// published recipe. Rendered as 409, distinct from authorization failures.
type DomainRuleError struct {
	Message string
}

func (e *DomainRuleError) Error() string {
	return e.Message
}

// StatusFor maps a recovered error to its HTTP status and wire shape.
func StatusFor(err error) (int, APIError) {
	switch e := err.(type) {
	case *ValidationError:
		return http.StatusUnprocessableEntity, APIError{Code: ErrValidationFailed, Message: "Los datos proporcionados no son válidos", Errors: e.Fields}
	case *AuthenticationError:
		return http.StatusUnauthorized, APIError{Code: ErrUnauthorized, Message: e.Message}
	case *AuthorizationError:
		return http.StatusForbidden, APIError{Code: ErrForbidden, Message: e.Message}
	case *NotFoundError:
		return http.StatusNotFound, APIError{Code: ErrNotFound, Message: e.Error()}
	case *ConflictError:
		return http.StatusConflict, APIError{Code: ErrConflict, Message: e.Message}
	case *DomainRuleError:
		return http.StatusConflict, APIError{Code: ErrDomainRule, Message: e.Message}
	default:
		return http.StatusInternalServerError, APIError{Code: ErrInternalServer, Message: "Error interno del servidor"}
	}
}
