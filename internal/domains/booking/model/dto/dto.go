package dto

import (
	"time"

	"roombook/internal/domains/booking/model"
	gDto "roombook/shared/dto"
	gModel "roombook/shared/model"
	"roombook/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomName  string    `json:"room_name"  validate:"required,min=1,max=100"`
	BookedBy  string    `json:"booked_by"  validate:"required,min=1,max=100"`
	Purpose   *string   `json:"purpose"    validate:"omitempty,max=500"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time"   validate:"required"`
}

func (r *CreateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		ID:        uuid.NewString(),
		RoomName:  r.RoomName,
		BookedBy:  r.BookedBy,
		Purpose:   r.Purpose,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type UpdateBookingRequest struct {
	RoomName  string    `db:"room_name"  json:"room_name"  validate:"required,min=1,max=100"`
	BookedBy  string    `db:"booked_by"  json:"booked_by"  validate:"required,min=1,max=100"`
	Purpose   *string   `db:"purpose"    json:"purpose"    validate:"omitempty,max=500"`
	StartTime time.Time `db:"start_time" json:"start_time" validate:"required"`
	EndTime   time.Time `db:"end_time"   json:"end_time"   validate:"required"`
	Status    string    `json:"status"                     validate:"required"`
}

// GetBookingsQuery extends the common listing parameters with the
// booking-specific filters.
type GetBookingsQuery struct {
	gDto.QueryParams
	Status    *model.Status
	StartDate *time.Time
	EndDate   *time.Time
}

type BookingResponse struct {
	ID        string  `json:"id"`
	RoomName  string  `json:"room_name"`
	BookedBy  string  `json:"booked_by"`
	Purpose   *string `json:"purpose,omitempty"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Status    string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomName = model.RoomName
	r.BookedBy = model.BookedBy
	r.Purpose = model.Purpose
	r.StartTime = model.StartTime.Format(time.RFC3339)
	r.EndTime = model.EndTime.Format(time.RFC3339)
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Data []BookingResponse `json:"data"`
	gDto.Pagination
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalCount int, params gDto.QueryParams) {
	r.Pagination.FromQuery(params, totalCount)

	r.Data = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Data[i].FromModel(mod)
	}
}
