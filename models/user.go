package models

import "time"

// User is an operator account (cashier or admin). PasswordHash is a bcrypt
// hash and is never serialized.
type User struct {
	UserID       int64     `json:"user_id"`
	Login        string    `json:"login"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)
