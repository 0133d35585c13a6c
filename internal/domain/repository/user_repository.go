package repository

import (
	"context"

	"amptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a user id or email does not resolve.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserEmailTaken is returned when another account already owns the email.
	ErrUserEmailTaken = errors.New("user email already taken")
)

// UserRepository defines persistence operations for users. Users are
// created on registration and touched on login; the application never
// deletes them, because ledger rows reference their ids forever.
type UserRepository interface {
	// Create persists a new user and fills in generated fields.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user. Returns ErrUserNotFound when the id
	// does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by login identifier. Returns
	// ErrUserNotFound when the email does not resolve.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists mutable fields and refreshes UpdatedAt; used to touch
	// the record on login. Returns ErrUserNotFound when the id does not
	// resolve.
	Update(ctx context.Context, user *entity.User) error
}
