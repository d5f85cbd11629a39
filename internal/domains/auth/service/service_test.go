package service_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roombook/infras/jwt"
	jwtMocks "roombook/infras/jwt/mocks"
	"roombook/infras/otel/mocks"
	"roombook/internal/domains/auth/model/dto"
	"roombook/internal/domains/auth/service"
	userMocks "roombook/internal/domains/user/mocks"
	userModel "roombook/internal/domains/user/model"
	cacheMocks "roombook/shared/cache/mocks"
	"roombook/shared/constant"
	"roombook/shared/failure"
	gModel "roombook/shared/model"
	"roombook/shared/password"
	"roombook/shared/timezone"
)

func newAuthService(t *testing.T) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockUserRepo, mockJWT, mockCache, mockOtel)

	return svc, mockUserRepo, mockJWT
}

func validUser(t *testing.T) userModel.User {
	t.Helper()

	hashed, err := password.Hash("Password123!")
	require.NoError(t, err)

	return userModel.User{
		ID:       "user-1",
		FullName: "Dina Lestari",
		Email:    "dina.lestari@campus.local",
		Password: hashed,
		Role:     constant.RoleUser,
		Metadata: gModel.Metadata{CreatedAt: timezone.Now()},
	}
}

func TestAuthService_Login(t *testing.T) {
	user := validUser(t)

	t.Run("successful login", func(t *testing.T) {
		svc, mockUserRepo, mockJWT := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		mockJWT.EXPECT().
			GenerateToken(gomock.Any(), user.ID, user.Email, user.Role).
			Return(&jwt.Token{AccessToken: "access-token", TokenType: "Bearer", ExpiresIn: 7200}, nil)

		res, err := svc.Login(t.Context(), dto.LoginRequest{
			Email:    "Dina.Lestari@campus.local ",
			Password: "Password123!",
		})

		require.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
		assert.Equal(t, user.Email, res.User.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Login(t.Context(), dto.LoginRequest{
			Email:    "nobody@campus.local",
			Password: "Password123!",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
		assert.Equal(t, "Invalid email or password", err.Error())
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		_, err := svc.Login(t.Context(), dto.LoginRequest{
			Email:    user.Email,
			Password: "wrong-password",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

		// Same answer as for an unknown email.
		assert.Equal(t, "Invalid email or password", err.Error())
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockUserRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, user userModel.User) error {
				assert.Equal(t, "raka.pratama@campus.local", user.Email)
				assert.Equal(t, constant.RoleUser, user.Role)
				assert.NotEqual(t, "Password123!", user.Password)

				return nil
			})

		res, err := svc.Register(t.Context(), dto.RegisterRequest{
			FullName: "Raka Pratama",
			Email:    " Raka.Pratama@Campus.Local ",
			Password: "Password123!",
		})

		require.NoError(t, err)
		assert.Equal(t, "raka.pratama@campus.local", res.Email)
		assert.Equal(t, constant.RoleUser, res.Role)
	})

	t.Run("email already registered", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Register(t.Context(), dto.RegisterRequest{
			FullName: "Raka Pratama",
			Email:    "raka.pratama@campus.local",
			Password: "Password123!",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "Email is already registered", err.Error())
	})
}
