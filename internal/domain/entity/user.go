// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account in the store, customer and admin alike.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`         // Primary contact email, used as the login identifier.
	Name         string    `json:"name"`          // Display name shown on the dashboard and in notifications.
	PasswordHash string    `json:"password_hash"` // bcrypt hash of the account password.
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
