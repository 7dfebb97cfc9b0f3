package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Workdays ────────────────────────────────────────────────────────────────

type CreateWorkdayRequest struct {
	DriverID uint            `json:"driver_id" validate:"required"`
	Date     string          `json:"date"      validate:"required,datetime=2006-01-02"`
	CHHours  decimal.Decimal `json:"ch_hours"  validate:"min=0,max=24"`
	NCHours  decimal.Decimal `json:"nc_hours"  validate:"min=0,max=24"`
	Notes    *string         `json:"notes"`
}

type UpdateWorkdayRequest struct {
	Date    *string          `json:"date"     validate:"omitempty,datetime=2006-01-02"`
	CHHours *decimal.Decimal `json:"ch_hours"`
	NCHours *decimal.Decimal `json:"nc_hours"`
	Notes   *string          `json:"notes"`
}

type WorkdayResponse struct {
	ID        uint            `json:"id"`
	DriverID  uint            `json:"driver_id"`
	Date      string          `json:"date"`
	CHHours   decimal.Decimal `json:"ch_hours"`
	NCHours   decimal.Decimal `json:"nc_hours"`
	Notes     *string         `json:"notes"`
	HaulCount int             `json:"haul_count"`
	CreatedAt time.Time       `json:"created_at"`
}

// ─── Hauls ───────────────────────────────────────────────────────────────────

type CreateHaulRequest struct {
	WorkdayID       uint            `json:"workday_id"        validate:"required"`
	DateTime        time.Time       `json:"date_time"         validate:"required"`
	Customer        string          `json:"customer"          validate:"required,min=1,max=120"`
	InvoiceNumber   *string         `json:"invoice_number"    validate:"omitempty,max=30"`
	Material        string          `json:"material"          validate:"required,min=1,max=120"`
	LoadType        string          `json:"load_type"         validate:"required,oneof=tons yards"`
	Quantity        decimal.Decimal `json:"quantity"          validate:"gt=0"`
	Rate            decimal.Decimal `json:"rate"              validate:"min=0"`
	FreightRouteID  *uint           `json:"freight_route_id"`
	VendorProductID *uint           `json:"vendor_product_id"`
}

type UpdateHaulRequest struct {
	DateTime        *time.Time       `json:"date_time"`
	Customer        *string          `json:"customer"          validate:"omitempty,min=1,max=120"`
	InvoiceNumber   *string          `json:"invoice_number"    validate:"omitempty,max=30"`
	Material        *string          `json:"material"          validate:"omitempty,min=1,max=120"`
	LoadType        *string          `json:"load_type"         validate:"omitempty,oneof=tons yards"`
	Quantity        *decimal.Decimal `json:"quantity"`
	Rate            *decimal.Decimal `json:"rate"`
	FreightRouteID  *uint            `json:"freight_route_id"`
	VendorProductID *uint            `json:"vendor_product_id"`
}

type HaulResponse struct {
	ID              uint            `json:"id"`
	WorkdayID       uint            `json:"workday_id"`
	DateTime        time.Time       `json:"date_time"`
	Customer        string          `json:"customer"`
	InvoiceNumber   *string         `json:"invoice_number"`
	Material        string          `json:"material"`
	LoadType        string          `json:"load_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	Amount          decimal.Decimal `json:"amount"`
	FreightRouteID  *uint           `json:"freight_route_id"`
	VendorProductID *uint           `json:"vendor_product_id"`
}
