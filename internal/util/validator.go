package util

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// NewValidator returns a validator that reports fields by their json names.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("nonblankids", nonBlankIDs)

	return validate
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// nonBlankIDs rejects id lists holding a blank entry. Repeats are allowed
// and collapse downstream.
func nonBlankIDs(fl validator.FieldLevel) bool {
	ids, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	return !lo.Contains(ids, "")
}
