package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

type CreateVendorRequestDTO struct {
	BusinessName string `json:"business_name" validate:"required,max=120" example:"Alice Bakery"`
	Description  string `json:"description" example:"Fresh bread daily"`
	Category     string `json:"category" example:"food"`
	Phone        string `json:"phone" example:"+91 90000 00000"`
	Address      string `json:"address" example:"MG Road, Pune"`
	LogoURL      string `json:"logo_url" example:"https://cdn.example.com/logo.png"`
}

type ValidateVendorRequestDTO struct {
	Validated *bool `json:"validated" validate:"required" example:"true"`
}

type VendorDTO struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	BusinessName string    `json:"business_name" example:"Alice Bakery"`
	Description  string    `json:"description"`
	Category     string    `json:"category" example:"food"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	LogoURL      string    `json:"logo_url"`
	Validated    bool      `json:"validated" example:"false"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r CreateVendorRequestDTO) ToDomain() *domain.Vendor {
	return &domain.Vendor{
		BusinessName: r.BusinessName,
		Description:  r.Description,
		Category:     r.Category,
		Phone:        r.Phone,
		Address:      r.Address,
		LogoURL:      r.LogoURL,
	}
}

func FromVendor(v *domain.Vendor) VendorDTO {
	return VendorDTO{
		ID:           v.ID,
		UserID:       v.UserID,
		BusinessName: v.BusinessName,
		Description:  v.Description,
		Category:     v.Category,
		Phone:        v.Phone,
		Address:      v.Address,
		LogoURL:      v.LogoURL,
		Validated:    v.Validated,
		CreatedAt:    v.CreatedAt,
	}
}
