package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Guests are not users; they are identified
// only through CartOwner until they register or log in.
type User struct {
	ID                 uuid.UUID
	Email              string // Primary login identifier, unique.
	FirstName          string
	LastName           string
	PasswordHash       string // bcrypt hash; never exposed through the API.
	IsAdmin            bool   // Grants access to the back-office endpoints.
	RefreshToken       string // Currently valid refresh token, empty when logged out.
	RefreshTokenExpiry time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Role returns the role claims embedded in issued access tokens.
func (u *User) Role() []string {
	if u.IsAdmin {
		return []string{RoleAdmin}
	}

	return []string{RoleCustomer}
}

const (
	// RoleAdmin gates the /admin route group.
	RoleAdmin = "admin"
	// RoleCustomer is the default role of every registered user.
	RoleCustomer = "customer"
)
