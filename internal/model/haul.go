package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Haul is a single load delivered during a Workday.
// LoadType: "tons" | "yards"
type Haul struct {
	ID              uint            `gorm:"primaryKey"`
	WorkdayID       uint            `gorm:"not null;index"`
	DateTime        time.Time       `gorm:"not null"`
	Customer        string          `gorm:"not null"`
	InvoiceNumber   *string         `gorm:"index"`
	Material        string          `gorm:"not null"`
	LoadType        string          `gorm:"type:varchar(10);not null;default:'tons'"`
	Quantity        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Rate            decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	FreightRouteID  *uint           `gorm:"index"`
	VendorProductID *uint           `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	FreightRoute  *FreightRoute  `gorm:"foreignKey:FreightRouteID;constraint:OnDelete:SET NULL"`
	VendorProduct *VendorProduct `gorm:"foreignKey:VendorProductID;constraint:OnDelete:SET NULL"`
}

// Amount is Quantity × Rate rounded to cents.
func (h Haul) Amount() decimal.Decimal { return h.Quantity.Mul(h.Rate).Round(2) }
