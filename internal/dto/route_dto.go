package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateFreightRouteRequest struct {
	VendorLocationID uint            `json:"vendor_location_id" validate:"required"`
	Destination      string          `json:"destination"        validate:"required,min=2,max=120"`
	FreightCost      decimal.Decimal `json:"freight_cost"       validate:"min=0"`
	Notes            *string         `json:"notes"`
	IsActive         *bool           `json:"is_active"`
}

type UpdateFreightRouteRequest struct {
	Destination *string          `json:"destination"  validate:"omitempty,min=2,max=120"`
	FreightCost *decimal.Decimal `json:"freight_cost"`
	Notes       *string          `json:"notes"`
	IsActive    *bool            `json:"is_active"`
}

type FreightRouteResponse struct {
	ID                  uint            `json:"id"`
	VendorLocationID    uint            `json:"vendor_location_id"`
	Destination         string          `json:"destination"`
	FreightCost         decimal.Decimal `json:"freight_cost"`
	Notes               *string         `json:"notes"`
	IsActive            bool            `json:"is_active"`
	DeactivatedByParent bool            `json:"deactivated_by_parent"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
