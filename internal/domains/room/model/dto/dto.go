package dto

import (
	"roombook/internal/domains/room/model"
	gDto "roombook/shared/dto"
	gModel "roombook/shared/model"
	"roombook/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=120"`
	Building    string  `json:"building"    validate:"required,min=2,max=120"`
	Floor       int     `json:"floor"       validate:"gte=0,lte=200"`
	Capacity    int     `json:"capacity"    validate:"required,gte=1,lte=10000"`
	Category    string  `json:"category"    validate:"required,min=2,max=80"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Status      string  `json:"status"      validate:"omitempty,oneof=Active Inactive"`
}

func (r *CreateRoomRequest) ToModel() model.Room {
	status := model.Status(r.Status)
	if status == "" {
		status = model.StatusActive
	}

	return model.Room{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Building:    r.Building,
		Floor:       r.Floor,
		Capacity:    r.Capacity,
		Category:    r.Category,
		Description: r.Description,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type UpdateRoomRequest struct {
	Name        string  `db:"name"        json:"name"        validate:"required,min=2,max=120"`
	Building    string  `db:"building"    json:"building"    validate:"required,min=2,max=120"`
	Floor       int     `db:"floor"       json:"floor"       validate:"gte=0,lte=200"`
	Capacity    int     `db:"capacity"    json:"capacity"    validate:"required,gte=1,lte=10000"`
	Category    string  `db:"category"    json:"category"    validate:"required,min=2,max=80"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=500"`
	Status      string  `db:"status"      json:"status"      validate:"required,oneof=Active Inactive"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Building    string  `json:"building"`
	Floor       int     `json:"floor"`
	Capacity    int     `json:"capacity"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Building = model.Building
	r.Floor = model.Floor
	r.Capacity = model.Capacity
	r.Category = model.Category
	r.Description = model.Description
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Data []RoomResponse `json:"data"`
	gDto.Pagination
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalCount int, params gDto.QueryParams) {
	r.Pagination.FromQuery(params, totalCount)

	r.Data = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Data[i].FromModel(mod)
	}
}
