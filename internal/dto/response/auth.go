package response

import (
	"time"

	"auberge-espagnole/internal/data/entity"
)

// AuthUser is the identity returned with a token; never the password hash.
type AuthUser struct {
	ID    int64           `json:"id"`
	Email string          `json:"email"`
	Role  entity.UserRole `json:"role"`
}

type AuthResponse struct {
	User      AuthUser  `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func UserToAuthUser(user *entity.User) AuthUser {
	return AuthUser{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
}
