package model

import (
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleReviewer = "reviewer"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Not exposed
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the authenticated identity for one request. It is built by the
// auth middleware from the live session record and passed explicitly into
// services, which re-check the role at invocation time.
type Principal struct {
	UserID string
	Role   string
}
