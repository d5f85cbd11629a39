package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/shared/failure"
	"roombook/shared/validator"
)

type createRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=120"`
	Email    string `json:"email"    validate:"required,email"`
	Capacity int    `json:"capacity" validate:"gte=1,lte=10000"`
}

func TestValidate(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		body := `{"name": "A 301", "email": "admin@campus.local", "capacity": 40}`

		req := createRequest{}
		err := validator.Validate(strings.NewReader(body), &req)

		require.NoError(t, err)
		assert.Equal(t, "A 301", req.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := createRequest{}
		err := validator.Validate(strings.NewReader(`{"name":`), &req)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("violations are keyed by field", func(t *testing.T) {
		body := `{"name": "A", "email": "not-an-email", "capacity": 0}`

		req := createRequest{}
		err := validator.Validate(strings.NewReader(body), &req)

		require.Error(t, err)

		var fail *failure.Failure

		require.ErrorAs(t, err, &fail)
		assert.Equal(t, http.StatusBadRequest, fail.Code)
		assert.Equal(t, "Validation failed", fail.Message)
		assert.Contains(t, fail.Errors, "Name")
		assert.Contains(t, fail.Errors, "Email")
		assert.Contains(t, fail.Errors, "Capacity")
	})
}

func TestValidateStruct(t *testing.T) {
	req := createRequest{Name: "A 301", Email: "admin@campus.local", Capacity: 40}

	require.NoError(t, validator.ValidateStruct(&req))
}
