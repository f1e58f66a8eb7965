// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity entity of the system.
// It carries everything the credential subsystem needs: the login email,
// the stored password digest and the role set. The raw password never
// appears on this type; only the bcrypt digest is held once an account exists.
type Account struct {
	ID           uuid.UUID // Store-assigned unique identifier.
	Name         string    // Display name.
	Email        string    // Login identifier, unique across all accounts.
	PasswordHash string    // Salted one-way digest of the password. Never empty for a persisted account.
	Roles        Roles     // Role set; defaults to RoleUser at registration.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// HasRole reports whether the account carries the given role.
func (a *Account) HasRole(role Role) bool {
	return a.Roles.Contains(role)
}
