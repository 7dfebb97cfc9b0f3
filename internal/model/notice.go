package model

import "time"

// Notice is a message pinned on the dashboard and optionally emailed to contacts.
type Notice struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Body      string `gorm:"type:text;not null"`
	IsActive  bool   `gorm:"not null"`
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
