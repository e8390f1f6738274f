package request

// UpdateProfileRequest overwrites only the fields that are present.
type UpdateProfileRequest struct {
	FirstName  *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName   *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address    *string `json:"address,omitempty" validate:"omitempty,max=255"`
	City       *string `json:"city,omitempty" validate:"omitempty,max=100"`
	PostalCode *string `json:"postalCode,omitempty" validate:"omitempty,max=10"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}
