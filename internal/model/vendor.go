package model

import "time"

// Vendor is a supplier of landscape materials. A vendor owns one or more
// VendorLocations; deactivating a vendor cascades down to them.
type Vendor struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"uniqueIndex;not null"`
	ShortName  string `gorm:"not null;default:''"`
	VendorType string `gorm:"type:varchar(30);not null;default:'supplier'"` // supplier | quarry | nursery | freight
	Notes      *string
	IsActive   bool `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Locations []VendorLocation `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	Contacts  []Contact        `gorm:"foreignKey:VendorID;constraint:OnDelete:SET NULL"`
}
