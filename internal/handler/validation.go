package handler

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var requestValidator = validator.New()

// validateRequest runs struct tag validation and reports the first failing
// field in a client readable form.
func validateRequest(req interface{}) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	e := validationErrors[0]
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "required_without":
		return fmt.Errorf("%s is required when %s is empty", field, e.Param())
	case "min", "gte":
		return fmt.Errorf("%s must be at least %s", field, e.Param())
	case "max", "lte":
		if e.Kind() == reflect.String {
			return fmt.Errorf("%s must be at most %s characters", field, e.Param())
		}
		return fmt.Errorf("%s must be at most %s", field, e.Param())
	case "url":
		return fmt.Errorf("%s must be a valid url", field)
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}
