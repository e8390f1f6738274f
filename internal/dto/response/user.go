package response

import (
	"time"

	"auberge-espagnole/internal/data/entity"
)

type UserResponse struct {
	ID         int64           `json:"id"`
	Email      string          `json:"email"`
	Role       entity.UserRole `json:"role"`
	FirstName  *string         `json:"firstName"`
	LastName   *string         `json:"lastName"`
	Phone      *string         `json:"phone"`
	Address    *string         `json:"address"`
	City       *string         `json:"city"`
	PostalCode *string         `json:"postalCode"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Role:       user.Role,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Phone:      user.Phone,
		Address:    user.Address,
		City:       user.City,
		PostalCode: user.PostalCode,
		CreatedAt:  user.CreatedAt,
	}
}
