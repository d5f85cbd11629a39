package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"roombook/shared/logger"
)

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithNoContent sends an empty 204 response
func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithError sends the failure envelope carrying the status code, the
// message and any per-field violations. Unclassified errors become a
// plain 500 so internals never leak to clients.
func WithError(writer http.ResponseWriter, err error) {
	var fail *failure.Failure
	if !errors.As(err, &fail) {
		fail = &failure.Failure{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		}
	}

	response(writer, fail.Code, fail)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
