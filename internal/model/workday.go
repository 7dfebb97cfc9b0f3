package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Workday is one driver's day. CHHours are hours billed in-house, NCHours
// are non-commissionable hours (shop time, waiting).
type Workday struct {
	ID        uint            `gorm:"primaryKey"`
	DriverID  uint            `gorm:"not null;uniqueIndex:idx_workday_driver_date"`
	Date      time.Time       `gorm:"type:date;not null;uniqueIndex:idx_workday_driver_date"`
	CHHours   decimal.Decimal `gorm:"column:ch_hours;type:decimal(5,2);not null;default:0"`
	NCHours   decimal.Decimal `gorm:"column:nc_hours;type:decimal(5,2);not null;default:0"`
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Driver *Driver `gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
	Hauls  []Haul  `gorm:"foreignKey:WorkdayID;constraint:OnDelete:CASCADE"`
}
