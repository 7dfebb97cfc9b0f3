package dto

type CreateContactRequest struct {
	VendorID  *uint   `json:"vendor_id"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=60"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=60"`
	Title     *string `json:"title"      validate:"omitempty,max=60"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	Notes     *string `json:"notes"`
}

type UpdateContactRequest struct {
	VendorID  *uint   `json:"vendor_id"`
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=60"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=60"`
	Title     *string `json:"title"      validate:"omitempty,max=60"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	Notes     *string `json:"notes"`
}

type ContactResponse struct {
	ID        uint    `json:"id"`
	VendorID  *uint   `json:"vendor_id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Title     *string `json:"title"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Notes     *string `json:"notes"`
}
