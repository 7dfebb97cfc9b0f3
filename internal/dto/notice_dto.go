package dto

import "time"

type CreateNoticeRequest struct {
	Title     string     `json:"title"      validate:"required,min=2,max=140"`
	Body      string     `json:"body"       validate:"required"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type UpdateNoticeRequest struct {
	Title     *string    `json:"title"      validate:"omitempty,min=2,max=140"`
	Body      *string    `json:"body"`
	IsActive  *bool      `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type NoticeResponse struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	IsActive  bool       `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

type BroadcastResponse struct {
	NoticeID   uint `json:"notice_id"`
	Recipients int  `json:"recipients"`
}
