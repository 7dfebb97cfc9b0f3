package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateVendorRequest struct {
	Name       string  `json:"name"        validate:"required,min=2,max=120"`
	ShortName  string  `json:"short_name"  validate:"max=30"`
	VendorType string  `json:"vendor_type" validate:"omitempty,oneof=supplier quarry nursery freight"`
	Notes      *string `json:"notes"`
}

// UpdateVendorRequest changes descriptive fields only; activation goes
// through the deactivate/reactivate endpoints so that it cascades.
type UpdateVendorRequest struct {
	Name       *string `json:"name"        validate:"omitempty,min=2,max=120"`
	ShortName  *string `json:"short_name"  validate:"omitempty,max=30"`
	VendorType *string `json:"vendor_type" validate:"omitempty,oneof=supplier quarry nursery freight"`
	Notes      *string `json:"notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VendorResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	ShortName  string    `json:"short_name"`
	VendorType string    `json:"vendor_type"`
	Notes      *string   `json:"notes"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
