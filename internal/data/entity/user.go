package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is never hard-deleted; profile fields are optional.
type User struct {
	BaseNoDelete
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	FirstName    *string  `db:"first_name"`
	LastName     *string  `db:"last_name"`
	Phone        *string  `db:"phone"`
	Address      *string  `db:"address"`
	City         *string  `db:"city"`
	PostalCode   *string  `db:"postal_code"`
}

// DisplayName joins first and last name, falling back to the email.
func (u *User) DisplayName() string {
	name := ""
	if u.FirstName != nil {
		name = *u.FirstName
	}
	if u.LastName != nil && *u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += *u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}
