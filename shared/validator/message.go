package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
	}
)

// fieldMessages turns validator errors into per-field message lists keyed by
// the struct field name.
func fieldMessages(err error) map[string][]string {
	fieldErrors := map[string][]string{}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		fieldErrors["request"] = []string{err.Error()}

		return fieldErrors
	}

	for _, valErr := range valErrors {
		field := valErr.Field()

		errStr := messages[valErr.Tag()]
		if errStr == "" {
			errStr = "{field} is invalid"
		}

		errStr = strings.ReplaceAll(errStr, "{field}", field)
		errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

		fieldErrors[field] = append(fieldErrors[field], errStr)
	}

	return fieldErrors
}
