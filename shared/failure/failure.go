package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP
// response codes. Errors optionally carries per-field violation messages.
type Failure struct {
	Code    int                 `json:"status_code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a 400 Failure carrying field-level violation messages.
func Validation(message string, fieldErrors map[string][]string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: message,
		Errors:  fieldErrors,
	}
}

// FieldViolation returns a 400 Failure for a single offending field.
func FieldViolation(field, msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Errors:  map[string][]string{field: {msg}},
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// ConflictForField returns a 409 Failure attributed to a single field.
func ConflictForField(field, msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Errors:  map[string][]string{field: {msg}},
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
