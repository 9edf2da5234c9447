package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Report JSON field names so messages match the request body.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Namespace()
			if i := strings.Index(field, "."); i >= 0 {
				field = field[i+1:]
			}
			name := e.Field()
			switch e.Tag() {
			case "required":
				errs[field] = name + " is required"
			case "min":
				errs[field] = name + " must be at least " + e.Param()
			case "max":
				errs[field] = name + " must be at most " + e.Param() + " characters"
			case "oneof":
				errs[field] = name + " must be one of: " + e.Param()
			case "gte":
				errs[field] = name + " must be greater than or equal to " + e.Param()
			case "lte":
				errs[field] = name + " must be less than or equal to " + e.Param()
			default:
				errs[field] = name + " is invalid"
			}
		}
	}

	return errs
}
