package dto

import "time"

type CreateDriverRequest struct {
	FirstName   string  `json:"first_name"   validate:"required,min=1,max=60"`
	LastName    string  `json:"last_name"    validate:"required,min=1,max=60"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	TruckNumber *string `json:"truck_number" validate:"omitempty,max=20"`
	DateHired   *string `json:"date_hired"   validate:"omitempty,datetime=2006-01-02"`
}

type UpdateDriverRequest struct {
	FirstName   *string `json:"first_name"   validate:"omitempty,min=1,max=60"`
	LastName    *string `json:"last_name"    validate:"omitempty,min=1,max=60"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	TruckNumber *string `json:"truck_number" validate:"omitempty,max=20"`
	DateHired   *string `json:"date_hired"   validate:"omitempty,datetime=2006-01-02"`
	IsActive    *bool   `json:"is_active"`
}

type DriverResponse struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	TruckNumber *string   `json:"truck_number"`
	DateHired   *string   `json:"date_hired"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
