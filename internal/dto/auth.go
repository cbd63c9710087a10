package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Username string `json:"username" validate:"required,min=3,max=30" example:"alice"`
	FullName string `json:"full_name" validate:"max=100" example:"Alice Doe"`
	Password string `json:"password" validate:"required,min=6" example:"secret1"`
	Role     string `json:"role" validate:"omitempty,oneof=member vendor" example:"member"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"secret1"`
}

type UserDTO struct {
	ID        uuid.UUID `json:"id" example:"7f2c1c9e-3a8b-4f7e-9a41-2d5c8e0b6a11"`
	Email     string    `json:"email" example:"alice@example.com"`
	Username  string    `json:"username" example:"alice"`
	FullName  string    `json:"full_name" example:"Alice Doe"`
	Role      string    `json:"role" example:"member"`
	CreatedAt time.Time `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

type AuthResponseDTO struct {
	Token string  `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  UserDTO `json:"user"`
}

type MeResponseDTO struct {
	User   UserDTO   `json:"user"`
	Wallet WalletDTO `json:"wallet"`
}

func FromUser(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
