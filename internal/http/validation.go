package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorOnce sync.Once

// setupValidator registra en el engine de binding de Gin la regla
// "clientname" y el uso de nombres de campo JSON en los errores.
// Idempotente: se ejecuta una sola vez por proceso.
func setupValidator() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("clientname", clientNameHasLetter)
	})
}

// clientNameHasLetter exige al menos una letra tras recortar espacios.
func clientNameHasLetter(fl validator.FieldLevel) bool {
	for _, r := range strings.TrimSpace(fl.Field().String()) {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// FieldError describe la violación de una restricción en un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// bindingErrorDetails traduce el error de binding a una lista por campo.
// Un valor JSON del tipo equivocado se atribuye a su campo; un body que ni
// siquiera parsea se reporta como error del body completo.
func bindingErrorDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return []FieldError{{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("must be of type %s", typeErr.Type),
			}}
		}
		return []FieldError{{Field: "body", Message: "malformed request body"}}
	}
	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: fieldErrorMessage(fe),
		})
	}
	return details
}

// queryErrorDetails atribuye errores de binding de query al parámetro
// indicado: Gin devuelve el strconv.NumError pelado, sin nombre de campo.
func queryErrorDetails(err error, field string) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return bindingErrorDetails(err)
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("must be an integer, got %q", numErr.Num),
		}}
	}
	return []FieldError{{Field: field, Message: "is invalid"}}
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "clientname":
		return "must contain at least one letter"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
