package dto

import (
	"roombook/infras/jwt"
	userDto "roombook/internal/domains/user/model/dto"
)

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=120"`
	Email    string `json:"email"     validate:"required,email,max=180"`
	Password string `json:"password"  validate:"required,min=8,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	jwt.Token
	User userDto.UserResponse `json:"user"`
}
