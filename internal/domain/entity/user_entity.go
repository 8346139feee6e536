package entity

import (
	"time"
)

// Role is the closed set of user roles. Authorization predicates match on
// this type instead of comparing raw strings.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleVisitor Role = "VISITOR"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVisitor:
		return true
	}
	return false
}

// User is the aggregate root for the visitor/admin domain
// Passwords are stored as bcrypt hashes in Password field
type User struct {
	ID        string
	Email     string
	Password  string
	Name      string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity is the resolved caller passed explicitly into every service
// operation. A nil *Identity means no session.
type Identity struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
