package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateVendorProductRequest struct {
	VendorLocationID uint            `json:"vendor_location_id" validate:"required"`
	Name             string          `json:"name"               validate:"required,min=2,max=120"`
	Description      *string         `json:"description"`
	Price            decimal.Decimal `json:"price"              validate:"min=0"`
	Unit             string          `json:"unit"               validate:"omitempty,oneof=ton yard bag each"`
	IsActive         *bool           `json:"is_active"`
}

type UpdateVendorProductRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=2,max=120"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Unit        *string          `json:"unit"        validate:"omitempty,oneof=ton yard bag each"`
	IsActive    *bool            `json:"is_active"`
}

type VendorProductResponse struct {
	ID                  uint            `json:"id"`
	VendorLocationID    uint            `json:"vendor_location_id"`
	Name                string          `json:"name"`
	Description         *string         `json:"description"`
	Price               decimal.Decimal `json:"price"`
	Unit                string          `json:"unit"`
	IsActive            bool            `json:"is_active"`
	DeactivatedByParent bool            `json:"deactivated_by_parent"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
