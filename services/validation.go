package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match the request body
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateInput runs struct validation and turns the first failure into a ValidationError
func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return InternalError(err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return ValidationError("%s is required", fe.Field())
	case "gt":
		return ValidationError("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return ValidationError("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return ValidationError("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return ValidationError("%s is invalid", fe.Field())
	}
}
