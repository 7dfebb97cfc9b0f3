package model

import "time"

// Contact stores one person of interest, optionally tied to a Vendor.
type Contact struct {
	ID        uint   `gorm:"primaryKey"`
	VendorID  *uint  `gorm:"index"`
	FirstName string `gorm:"not null"`
	LastName  *string
	Title     *string
	Phone     *string
	Email     *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
