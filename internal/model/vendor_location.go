package model

import (
	"time"

	"gorm.io/gorm"
)

// VendorLocation is a yard or pickup point of a Vendor. It is the parent of
// VendorProducts and FreightRoutes for activation cascades.
type VendorLocation struct {
	ID       uint   `gorm:"primaryKey"`
	VendorID uint   `gorm:"not null;index"`
	Name     string `gorm:"not null"`
	Address  *string
	City     *string
	State    *string `gorm:"type:varchar(2)"`
	Zip      *string `gorm:"type:varchar(10)"`
	Phone    *string
	Notes    *string
	IsActive bool `gorm:"not null;index"`
	// DeactivatedByParent is true only while the owning vendor's cascade holds
	// this location inactive.
	DeactivatedByParent bool `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Products      []VendorProduct `gorm:"foreignKey:VendorLocationID;constraint:OnDelete:CASCADE"`
	FreightRoutes []FreightRoute  `gorm:"foreignKey:VendorLocationID;constraint:OnDelete:CASCADE"`
}

// BeforeSave drops stale cascade bookkeeping when a row is saved as active.
func (l *VendorLocation) BeforeSave(*gorm.DB) error {
	if l.IsActive {
		l.DeactivatedByParent = false
	}
	return nil
}
