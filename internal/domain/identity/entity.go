// internal/domain/identity/entity.go
package identity

import (
	"database/sql"
	"time"
)

// User is an employee record loaded from the security schema.
// Credential and eligibility fields are internal-only and never serialized.
type User struct {
	PersonnelNumber   int32          `json:"personnel_number" db:"personnel_nr"`
	Salt              string         `json:"-" db:"salt"`
	PasswordHash      string         `json:"-" db:"password"`
	PasswordExpiresAt time.Time      `json:"-" db:"password_expiration_date"`
	Username          string         `json:"username" db:"username"`
	AccountDisabled   bool           `json:"-" db:"account_disabled"`
	DismissedAt       sql.NullTime   `json:"-" db:"date_dismiss"`
	Phone             sql.NullString `json:"phone" db:"telefon"`
	Email             sql.NullString `json:"email" db:"email"`
}

// Role grants a named set of permissions to a user.
type Role struct {
	ID   int32  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Resource is a named application resource a user may access.
// Writable marks write/execute capability on top of read access.
type Resource struct {
	ID       int32  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Writable bool   `json:"writable" db:"writable"`
}
