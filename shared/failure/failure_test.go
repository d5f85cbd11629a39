package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("broken body")), wantCode: http.StatusBadRequest, wantMsg: "broken body"},
		{name: "bad request from string", err: failure.BadRequestFromString("broken"), wantCode: http.StatusBadRequest, wantMsg: "broken"},
		{name: "unauthorized", err: failure.Unauthorized("Invalid email or password"), wantCode: http.StatusUnauthorized, wantMsg: "Invalid email or password"},
		{name: "not found", err: failure.NotFound("room not found"), wantCode: http.StatusNotFound, wantMsg: "room not found"},
		{name: "conflict", err: failure.Conflict("taken"), wantCode: http.StatusConflict, wantMsg: "taken"},
		{name: "forbidden", err: failure.Forbidden("no"), wantCode: http.StatusForbidden, wantMsg: "no"},
		{name: "internal", err: failure.InternalError(errors.New("boom")), wantCode: http.StatusInternalServerError, wantMsg: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestFieldViolation(t *testing.T) {
	err := failure.FieldViolation("EndTime", "End time must be after start time")

	var fail *failure.Failure

	require.ErrorAs(t, err, &fail)
	assert.Equal(t, http.StatusBadRequest, fail.Code)
	assert.Equal(t, []string{"End time must be after start time"}, fail.Errors["EndTime"])
}

func TestConflictForField(t *testing.T) {
	err := failure.ConflictForField("Email", "Email is already in use")

	var fail *failure.Failure

	require.ErrorAs(t, err, &fail)
	assert.Equal(t, http.StatusConflict, fail.Code)
	assert.Equal(t, []string{"Email is already in use"}, fail.Errors["Email"])
}

func TestGetCode_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", failure.NotFound("booking not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
}

func TestGetCode_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
}
