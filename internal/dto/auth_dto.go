package dto

type LoginRequest struct {
	Password string `json:"password" form:"password" validate:"required,min=1"`
}
