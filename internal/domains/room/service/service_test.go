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
	roomMocks "roombook/internal/domains/room/mocks"
	"roombook/internal/domains/room/model"
	"roombook/internal/domains/room/model/dto"
	"roombook/internal/domains/room/service"
	cacheMocks "roombook/shared/cache/mocks"
	gDto "roombook/shared/dto"
	"roombook/shared/failure"
	gModel "roombook/shared/model"
	"roombook/shared/timezone"
)

func newRoomService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func existingRoom() model.Room {
	return model.Room{
		ID:       "room-1",
		Name:     "A 301",
		Building: "Gedung D4",
		Floor:    3,
		Capacity: 40,
		Category: "Classroom",
		Status:   model.StatusActive,
		Metadata: gModel.Metadata{CreatedAt: timezone.Now()},
	}
}

func TestRoomService_Create(t *testing.T) {
	svc, mockRepo, _ := newRoomService(t)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, room model.Room) error {
			assert.NotEmpty(t, room.ID)
			assert.Equal(t, model.StatusActive, room.Status)

			return nil
		})

	res, err := svc.Create(t.Context(), dto.CreateRoomRequest{
		Name:     "A 301",
		Building: "Gedung D4",
		Floor:    3,
		Capacity: 40,
		Category: "Classroom",
	})

	require.NoError(t, err)
	assert.Equal(t, "A 301", res.Name)
	assert.Equal(t, string(model.StatusActive), res.Status)
}

func TestRoomService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newRoomService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filter gDto.FilterGroup) (int, error) {
			where, _ := filter.GetWhereClause()
			assert.Contains(t, where, "LOWER(rooms.name) LIKE")
			assert.Contains(t, where, "LOWER(rooms.building) LIKE")
			assert.Contains(t, where, "LOWER(rooms.category) LIKE")

			return 1, nil
		})

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			assert.Equal(t, "capacity", params.SortBy)

			return []model.Room{existingRoom()}, nil
		})

	res, err := svc.GetAll(t.Context(), gDto.QueryParams{
		Page:      1,
		PageSize:  10,
		SortBy:    "Capacity",
		SortOrder: gDto.SortDirDesc,
		Search:    "gedung",
	})

	require.NoError(t, err)
	assert.Len(t, res.Data, 1)
	assert.Equal(t, 1, res.TotalCount)
}

func TestRoomService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newRoomService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := svc.Get(t.Context(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := svc.Update(t.Context(), dto.UpdateRoomRequest{
			Name:     "A 301",
			Building: "Gedung D4",
			Capacity: 40,
			Category: "Classroom",
			Status:   string(model.StatusActive),
		}, "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("ground floor and cleared description reach the update", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		stored := existingRoom()
		description := "Ruang kelas lantai 3"
		stored.Description = &description

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 0, fields["floor"])
				assert.Contains(t, fields, "description")
				assert.Nil(t, fields["description"])

				return nil
			})

		updated := existingRoom()
		updated.Floor = 0
		updated.Description = nil

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)

		res, err := svc.Update(t.Context(), dto.UpdateRoomRequest{
			Name:     "A 301",
			Building: "Gedung D4",
			Floor:    0,
			Capacity: 40,
			Category: "Classroom",
			Status:   string(model.StatusActive),
		}, "room-1")

		require.NoError(t, err)
		assert.Equal(t, 0, res.Floor)
		assert.Nil(t, res.Description)
	})

	t.Run("success", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingRoom(), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 60, fields["capacity"])

				return nil
			})

		updated := existingRoom()
		updated.Capacity = 60

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)

		res, err := svc.Update(t.Context(), dto.UpdateRoomRequest{
			Name:     "A 301",
			Building: "Gedung D4",
			Floor:    3,
			Capacity: 60,
			Category: "Classroom",
			Status:   string(model.StatusActive),
		}, "room-1")

		require.NoError(t, err)
		assert.Equal(t, 60, res.Capacity)
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(t.Context(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.Delete(t.Context(), "room-1"))
	})
}
