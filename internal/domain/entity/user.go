// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated identity in the system. Its ID is the
// value recorded in CreatedBy / EnteredBy / RequestedBy / ApprovedBy fields,
// so users are never deleted by the application.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's login identifier.
	Name         string    // The user's display name.
	PasswordHash string    // Bcrypt hash of the user's password. Never serialized outward.
	Role         Role      // Advisory job function (pm, estimator, accountant, executive).
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification, refreshed on login.
}
