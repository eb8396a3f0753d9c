package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs struct tag validation and returns field-level details, or
// nil when the payload is valid.
func Validate(payload any) map[string]any {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	details := map[string]any{}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		details["payload"] = err.Error()
		return details
	}
	for _, fe := range fieldErrs {
		details[strings.ToLower(fe.Field())] = failureMessage(fe)
	}
	return details
}

func failureMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "invalid"
	}
}
