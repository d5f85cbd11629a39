package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"roombook/config"
	"roombook/infras/otel"
	"roombook/internal/domains/booking/model"
	"roombook/internal/domains/booking/model/dto"
	"roombook/internal/domains/booking/repository"
	"roombook/shared"
	"roombook/shared/cache"
	"roombook/shared/constant"
	gDto "roombook/shared/dto"
	"roombook/shared/failure"
	"roombook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	msgBookingNotFound = "booking not found"
	msgInvalidStatus   = "Invalid booking status"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req dto.GetBookingsQuery) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// validateSchedule enforces the time window rules. The past check only
// applies on create so that existing bookings stay editable after their
// start time has passed.
func validateSchedule(startTime, endTime time.Time, checkPast bool) error {
	if !endTime.After(startTime) {
		return failure.FieldViolation("EndTime", "End time must be after start time")
	}

	if checkPast && startTime.Before(timezone.Now()) {
		return failure.FieldViolation("StartTime", "Cannot book in the past")
	}

	return nil
}

// overlapFilter matches bookings of the same room whose window intersects
// [startTime, endTime). Touching windows do not intersect. excludeID is
// skipped so an update never collides with itself.
func overlapFilter(roomName string, startTime, endTime time.Time, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldRoomName,
			Operator: gDto.FilterOperatorEq,
			Value:    roomName,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "overlap_end",
			Field:    model.FieldStartTime,
			Operator: gDto.FilterOperatorLess,
			Value:    endTime,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "overlap_start",
			Field:    model.FieldEndTime,
			Operator: gDto.FilterOperatorGreater,
			Value:    startTime,
			Table:    model.TableName,
		},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

func (s *serviceImpl) ensureAvailable(ctx context.Context, roomName string, startTime, endTime time.Time, excludeID string) error {
	booked, err := s.repo.Exist(ctx, overlapFilter(roomName, startTime, endTime, excludeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return fmt.Errorf("failed to check room availability: %w", err)
	}

	if booked {
		return failure.ConflictForField("Schedule",
			fmt.Sprintf("Room '%s' is already booked during the requested time slot", roomName)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateSchedule(req.StartTime, req.EndTime, true); err != nil {
		return res, err
	}

	if err = s.ensureAvailable(ctx, req.RoomName, req.StartTime, req.EndTime, constant.Empty); err != nil {
		return res, err
	}

	booking := req.ToModel()

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.GetBookingsQuery) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.ResolveSort(model.SortableFields)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if req.Search != "" {
		filter.Filters = append(filter.Filters, shared.SearchFilter(req.Search, model.TableName, model.SearchFields...))
	}

	if req.Status != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    string(*req.Status),
			Table:    model.TableName,
		})
	}

	if req.StartDate != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "start_date",
			Field:    model.FieldStartTime,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    *req.StartDate,
			Table:    model.TableName,
		})
	}

	if req.EndDate != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "end_date",
			Field:    model.FieldEndTime,
			Operator: gDto.FilterOperatorLessEq,
			Value:    *req.EndDate,
			Table:    model.TableName,
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req.QueryParams, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req.QueryParams, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.QueryParams)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	status, ok := model.ParseStatus(req.Status)
	if !ok {
		return res, failure.FieldViolation("Status", msgInvalidStatus) // nolint:wrapcheck
	}

	if err = validateSchedule(req.StartTime, req.EndTime, false); err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	if err = s.ensureAvailable(ctx, req.RoomName, req.StartTime, req.EndTime, id); err != nil {
		return res, err
	}

	updatedFields := shared.TransformFields(req)
	updatedFields[model.FieldStatus] = string(status)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload booking")

		return res, fmt.Errorf("failed to reload booking: %w", err)
	}

	res.FromModel(updated)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}
