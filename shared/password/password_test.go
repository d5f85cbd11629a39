package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/shared/password"
)

func TestHash(t *testing.T) {
	t.Run("produces a verifiable bcrypt hash", func(t *testing.T) {
		hash, err := password.Hash("Password123!")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$2"))
		assert.NoError(t, password.Verify("Password123!", hash))
	})

	t.Run("salts every hash", func(t *testing.T) {
		first, err := password.Hash("Password123!")
		require.NoError(t, err)

		second, err := password.Hash("Password123!")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := password.Hash("")

		require.Error(t, err)
	})

	t.Run("rejects passwords beyond the bcrypt limit", func(t *testing.T) {
		_, err := password.Hash(strings.Repeat("a", 100))

		require.Error(t, err)
	})
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("Password123!")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "correct password", password: "Password123!", hash: hash},
		{name: "wrong password", password: "Password124!", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "Password123!", hash: "", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	err := password.Verify("Password123!", "not-a-bcrypt-hash")

	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrInvalidPassword)
}
