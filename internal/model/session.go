// Package model defines the gateway's domain records and shared error values.
package model

import "time"

// Role is the access role a session was issued for.
type Role string

var (
	RoleFarmer   Role = "farmer"
	RoleLab      Role = "lab"
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// ParseRole validates a role string.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleFarmer, RoleLab, RoleAdmin, RoleCustomer:
		return r, true
	default:
		return "", false
	}
}

// Session is an issued bearer token bound to a registered identity.
type Session struct {
	Token        string    `json:"token"`
	Role         Role      `json:"role"`
	IdentityName string    `json:"name"`
	Organization string    `json:"organization"`
	IssuedAt     time.Time `json:"issuedAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// UserStatusActive is the registry status of a user allowed to log in.
const UserStatusActive = "active"

// Contact holds optional user contact details.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// User is an identity in the ledger's user registry.
type User struct {
	UserID        string  `json:"userId"`
	Name          string  `json:"name"`
	Role          Role    `json:"role"`
	Organization  string  `json:"organization"`
	LicenseNumber string  `json:"licenseNumber,omitempty"`
	Contact       Contact `json:"contact"`
	Status        string  `json:"status"`
	RegisteredAt  string  `json:"registeredAt,omitempty"`
	RegisteredBy  string  `json:"registeredBy,omitempty"`
}
