package booking

import (
	"net/http"
	"roombook/infras/otel"
	"roombook/internal/domains/booking/model"
	"roombook/internal/domains/booking/model/dto"
	"roombook/internal/domains/booking/service"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"roombook/shared/validator"
	"roombook/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/roombooking", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// parseDate accepts RFC3339 timestamps and plain dates.
func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", raw)
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Book a room for the requested time slot. The slot must lie in the future and must not overlap an existing booking of the same room.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Created booking"
// @Failure 400 {object} failure.Failure
// @Failure 409 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /api/roombooking [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve bookings with pagination, search, sorting and optional status and date range filters.
// @Tags Booking
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param sortBy query string false "Sort key (startTime, roomName, bookedBy, createdAt)"
// @Param sortOrder query string false "Sort order (asc or desc)"
// @Param search query string false "Search by room name or booker"
// @Param status query string false "Filter by status (Pending, Approved, Rejected or 0, 1, 2)"
// @Param startDate query string false "Only bookings starting at or after this moment"
// @Param endDate query string false "Only bookings ending at or before this moment"
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 400 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /api/roombooking [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	query := dto.GetBookingsQuery{}
	query.FromRequest(r)

	if raw := r.URL.Query().Get(constant.RequestParamStatus); raw != "" {
		status, ok := model.ParseStatus(raw)
		if !ok {
			err := failure.FieldViolation("Status", "Invalid booking status")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		query.Status = &status
	}

	if raw := r.URL.Query().Get(constant.RequestParamStartDate); raw != "" {
		startDate, err := parseDate(raw)
		if err != nil {
			err := failure.FieldViolation("StartDate", "Invalid start date")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		query.StartDate = &startDate
	}

	if raw := r.URL.Query().Get(constant.RequestParamEndDate); raw != "" {
		endDate, err := parseDate(raw)
		if err != nil {
			err := failure.FieldViolation("EndDate", "Invalid end date")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		query.EndDate = &endDate
	}

	bookings, err := handler.service.GetAll(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Booking details"
// @Failure 404 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /api/roombooking/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates an existing booking by its ID.
// @Summary Update a booking by ID
// @Description Update the details of an existing booking. The new time slot must not overlap another booking of the same room.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} dto.BookingResponse "Updated booking"
// @Failure 400 {object} failure.Failure
// @Failure 404 {object} failure.Failure
// @Failure 409 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /api/roombooking/{id} [put]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteBooking deletes a booking by its ID.
// @Summary Delete a booking by ID
// @Description Soft delete a booking using its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204 "Booking deleted"
// @Failure 404 {object} failure.Failure
// @Failure 500 {object} failure.Failure
// @Router /api/roombooking/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithNoContent(w)
}
