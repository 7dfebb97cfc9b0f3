package dto

import "time"

type CreateVendorLocationRequest struct {
	VendorID uint    `json:"vendor_id" validate:"required"`
	Name     string  `json:"name"      validate:"required,min=2,max=120"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"     validate:"omitempty,len=2,alpha"`
	Zip      *string `json:"zip"       validate:"omitempty,min=5,max=10"`
	Phone    *string `json:"phone"`
	Notes    *string `json:"notes"`
}

// UpdateVendorLocationRequest never toggles is_active; see UpdateVendorRequest.
type UpdateVendorLocationRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=2,max=120"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"   validate:"omitempty,len=2,alpha"`
	Zip     *string `json:"zip"     validate:"omitempty,min=5,max=10"`
	Phone   *string `json:"phone"`
	Notes   *string `json:"notes"`
}

type VendorLocationResponse struct {
	ID                  uint      `json:"id"`
	VendorID            uint      `json:"vendor_id"`
	Name                string    `json:"name"`
	Address             *string   `json:"address"`
	City                *string   `json:"city"`
	State               *string   `json:"state"`
	Zip                 *string   `json:"zip"`
	Phone               *string   `json:"phone"`
	Notes               *string   `json:"notes"`
	IsActive            bool      `json:"is_active"`
	DeactivatedByParent bool      `json:"deactivated_by_parent"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
