package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the storefront, either a customer or an admin.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name.
	Email        string    // Login identifier, unique and stored lower-cased.
	Phone        string    // Contact phone number.
	PasswordHash string    // bcrypt hash of the password.
	Role         Role      // Either RoleUser or RoleAdmin.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user operates the back office.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Roles returns the roles carried in access tokens.
func (u *User) Roles() Roles {
	if u.IsAdmin() {
		return Roles{RoleUser, RoleAdmin}
	}

	return Roles{RoleUser}
}
