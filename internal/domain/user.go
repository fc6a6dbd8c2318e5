package domain

import (
	"strings"
	"time"
)

// Role of an account
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	// RoleGuest marks synthetic accounts created for walk-in bookings
	RoleGuest Role = "guest"
)

// GuestEmailDomain is the mail domain of synthetic guest accounts
const GuestEmailDomain = "guest.local"

// User is an account known to the identity provider
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash *string
	FirstName    string
	LastName     string
	DisplayName  string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true for administrators
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// SplitGuestName splits a free-text guest name into first and last name.
// The first token is the first name; with more than one token the last one
// is the last name, otherwise the last name is "Guest".
func SplitGuestName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], "Guest"
	default:
		return parts[0], parts[len(parts)-1]
	}
}
