package service_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roombook/config"
	"roombook/infras/otel/mocks"
	userMocks "roombook/internal/domains/user/mocks"
	"roombook/internal/domains/user/model"
	"roombook/internal/domains/user/model/dto"
	"roombook/internal/domains/user/service"
	cacheMocks "roombook/shared/cache/mocks"
	"roombook/shared/constant"
	gDto "roombook/shared/dto"
	"roombook/shared/failure"
	gModel "roombook/shared/model"
	"roombook/shared/timezone"
)

func newUserService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func existingUser() model.User {
	return model.User{
		ID:       "user-1",
		FullName: "Dina Lestari",
		Email:    "dina.lestari@campus.local",
		Password: "$2a$10$abcdefghijklmnopqrstuv",
		Role:     constant.RoleUser,
		Metadata: gModel.Metadata{CreatedAt: timezone.Now()},
	}
}

func TestUserService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, user model.User) error {
				assert.Equal(t, "dina.lestari@campus.local", user.Email)
				assert.Equal(t, constant.RoleAdmin, user.Role)

				return nil
			})

		res, err := svc.Create(t.Context(), dto.CreateUserRequest{
			FullName: "Dina Lestari",
			Email:    "Dina.Lestari@campus.local",
			Password: "Password123!",
			Role:     constant.RoleAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, "dina.lestari@campus.local", res.Email)
	})

	t.Run("email taken", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(t.Context(), dto.CreateUserRequest{
			FullName: "Dina Lestari",
			Email:    "dina.lestari@campus.local",
			Password: "Password123!",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(t.Context(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingUser(), nil)

		res, err := svc.Get(t.Context(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, "dina.lestari@campus.local", res.Email)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("email taken by another user", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingUser(), nil)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, filter gDto.FilterGroup) (bool, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "users.id != :exclude_id")
				assert.Equal(t, "user-1", args["exclude_id"])

				return true, nil
			})

		_, err := svc.Update(t.Context(), dto.UpdateUserRequest{
			FullName: "Dina Lestari",
			Email:    "admin@campus.local",
			Role:     constant.RoleUser,
		}, "user-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success without password change", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingUser(), nil)
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotContains(t, fields, model.FieldPassword)
				assert.Contains(t, fields, constant.FieldUpdatedAt)

				return nil
			})

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingUser(), nil)

		_, err := svc.Update(t.Context(), dto.UpdateUserRequest{
			FullName: "Dina L.",
			Email:    "dina.lestari@campus.local",
			Role:     constant.RoleUser,
		}, "user-1")

		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Update(t.Context(), dto.UpdateUserRequest{
			FullName: "Dina Lestari",
			Email:    "dina.lestari@campus.local",
			Role:     constant.RoleUser,
		}, "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.Delete(t.Context(), "user-1"))
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(t.Context(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
