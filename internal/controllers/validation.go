package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/recetario-app/recetario-api/internal/models"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// NewValidator builds the request validator. Field names in error messages
// come from the json/form tags, not the Go field names.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
	return validate
}

// validationFields turns validator errors into the per-field message map of
// the 422 response.
func validationFields(err error) map[string][]string {
	fields := map[string][]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = append(fields["_"], err.Error())
		return fields
	}

	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], messageFor(fe))
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio", fe.Field())
	case "email":
		return fmt.Sprintf("El campo %s debe ser un email válido", fe.Field())
	case "min":
		return fmt.Sprintf("El campo %s debe tener al menos %s caracteres", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("El campo %s no debe superar los %s caracteres", fe.Field(), fe.Param())
	case "eqfield":
		return fmt.Sprintf("La confirmación de %s no coincide", fe.Field())
	case "oneof":
		return fmt.Sprintf("El campo %s debe ser uno de: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("El campo %s no es válido", fe.Field())
	}
}

// respondError renders any recovered error with its mapped status. Unexpected
// errors are logged before becoming an opaque 500.
func respondError(ctx *gin.Context, err error) {
	status, body := models.StatusFor(err)
	if status == 500 {
		log.WithError(err).Error("Unhandled error")
	}
	ctx.JSON(status, body)
}

// respondValidation renders a validator error as a 422 with field details.
func respondValidation(ctx *gin.Context, err error) {
	respondError(ctx, &models.ValidationError{Fields: validationFields(err)})
}
