package utils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to French messages shown in the storefront
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "Ce champ est requis"
	case "email":
		return "Format d'email invalide"
	case "min":
		if err.Kind().String() == "string" {
			return fmt.Sprintf("Doit contenir au moins %s caractères", err.Param())
		}
		return fmt.Sprintf("Doit être au moins %s", err.Param())
	case "max":
		if err.Kind().String() == "string" {
			return fmt.Sprintf("Doit contenir au plus %s caractères", err.Param())
		}
		return fmt.Sprintf("Doit être au plus %s", err.Param())
	case "len":
		return fmt.Sprintf("Doit contenir exactement %s caractères", err.Param())
	case "numeric":
		return "Doit être numérique"
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Doit être l'une des valeurs : %s", options)
	case "gt":
		return fmt.Sprintf("Doit être supérieur à %s", err.Param())
	default:
		return fmt.Sprintf("Champ %s invalide", err.Field())
	}
}

// formats validation errors map into single string, sorted by field
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}
