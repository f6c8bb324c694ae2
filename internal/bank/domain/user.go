package domain

import (
	"errors"
	"time"
)

// ErrInvalidRole reports an unknown role name.
var ErrInvalidRole = errors.New("domain: invalid role")

// Role determines which dashboard a user sees and how audit entries
// attribute them.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleRegulator Role = "regulator"
	RoleAdmin     Role = "admin"
	RoleGuest     Role = "guest"
)

// ParseRole validates a role name coming off the wire.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleRegulator, RoleAdmin, RoleGuest:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User is an account known to the record store. Guest users are minted per
// login and never written to the Users collection; only their consent and
// mirror rows are.
type User struct {
	ID    string
	Email string // unique, compared case-sensitively

	// Password is the plaintext demo credential. This service is a demo
	// sandbox with no real authentication; do not reuse this pattern for
	// anything that holds real accounts.
	Password string

	Role      Role
	CreatedAt time.Time
}

// IsGuest reports whether the user was minted by a guest login.
func (u User) IsGuest() bool { return u.Role == RoleGuest }
