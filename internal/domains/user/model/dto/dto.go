package dto

import (
	"roombook/internal/domains/user/model"
	"roombook/shared"
	"roombook/shared/constant"
	gDto "roombook/shared/dto"
	gModel "roombook/shared/model"
	"roombook/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=120"`
	Email    string `json:"email"     validate:"required,email,max=180"`
	Password string `json:"password"  validate:"required,min=8,max=100"`
	Role     string `json:"role"      validate:"omitempty,oneof=User Admin"`
}

func (r *CreateUserRequest) ToModel(hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleUser
	}

	return model.User{
		ID:       uuid.NewString(),
		FullName: r.FullName,
		Email:    shared.NormalizeEmail(r.Email),
		Password: hashedPassword,
		Role:     role,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type UpdateUserRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"required,min=2,max=120"`
	Email    string `db:"email"     json:"email"     validate:"required,email,max=180"`
	Password string `json:"password"                 validate:"omitempty,min=8,max=100"`
	Role     string `db:"role"      json:"role"      validate:"required,oneof=User Admin"`
}

type UserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Role = model.Role
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Data []UserResponse `json:"data"`
	gDto.Pagination
}

func (r *GetUsersResponse) FromModels(models []model.User, totalCount int, params gDto.QueryParams) {
	r.Pagination.FromQuery(params, totalCount)

	r.Data = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Data[i].FromModel(mod)
	}
}
