package model

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles. Every permission gate switches on
// it exhaustively; adding a role means revisiting each gate.
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePanel     Role = "panel"
	RoleRecruiter Role = "recruiter"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RolePanel:
		return RolePanel, nil
	case RoleRecruiter:
		return RoleRecruiter, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }

// User represents a system user. The role is fixed at registration.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Panel is the credential-free projection of a panel user returned to
// recruiters.
type Panel struct {
	ID    int64  `json:"id" db:"id"`
	Email string `json:"email" db:"email"`
	Role  Role   `json:"role" db:"role"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the login payload consumed by the browser client.
type TokenResponse struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
	Email string `json:"email"`
}

// Identity is the caller identity the access-control gate attaches to each
// authenticated request.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
