package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VendorProduct is a material sold at a VendorLocation (gravel, mulch, flagstone...).
// Invariant: DeactivatedByParent implies !IsActive.
type VendorProduct struct {
	ID                  uint   `gorm:"primaryKey"`
	VendorLocationID    uint   `gorm:"not null;index"`
	Name                string `gorm:"not null"`
	Description         *string
	Price               decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Unit                string          `gorm:"type:varchar(10);not null;default:'ton'"` // ton | yard | bag | each
	IsActive            bool            `gorm:"not null;index"`
	DeactivatedByParent bool            `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (p *VendorProduct) BeforeSave(*gorm.DB) error {
	if p.IsActive {
		p.DeactivatedByParent = false
	}
	return nil
}
