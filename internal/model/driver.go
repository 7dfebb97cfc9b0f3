package model

import "time"

// Driver is a truck driver whose days are logged as Workdays.
type Driver struct {
	ID          uint   `gorm:"primaryKey"`
	FirstName   string `gorm:"not null"`
	LastName    string `gorm:"not null"`
	Phone       *string
	Email       *string
	TruckNumber *string
	DateHired   *time.Time
	IsActive    bool `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName is the display name used on haul sheets.
func (d Driver) FullName() string { return d.FirstName + " " + d.LastName }
