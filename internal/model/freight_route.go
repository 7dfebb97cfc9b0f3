package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FreightRoute prices hauling from a VendorLocation to a destination.
type FreightRoute struct {
	ID                  uint            `gorm:"primaryKey"`
	VendorLocationID    uint            `gorm:"not null;index"`
	Destination         string          `gorm:"not null"`
	FreightCost         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Notes               *string
	IsActive            bool `gorm:"not null;index"`
	DeactivatedByParent bool `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (r *FreightRoute) BeforeSave(*gorm.DB) error {
	if r.IsActive {
		r.DeactivatedByParent = false
	}
	return nil
}
