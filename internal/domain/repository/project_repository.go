// Package repository defines the persistence contracts the domain depends on.
// Implementations live in the infra layer; the use case layer only sees these
// interfaces, keeping the core testable with a bare identity value and mocks.
package repository

import (
	"context"

	"amptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProjectNotFound is returned when a project id does not resolve.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	// Create persists a new project and fills in generated fields.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a single project. Returns ErrProjectNotFound when
	// the id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindAll lists projects ordered by creation time, newest first.
	FindAll(ctx context.Context) ([]*entity.Project, error)

	// Update persists mutable fields of an existing project and refreshes
	// its UpdatedAt timestamp. Returns ErrProjectNotFound when the id does
	// not resolve.
	Update(ctx context.Context, project *entity.Project) error

	// Delete hard-deletes a project. Returns ErrProjectNotFound when the id
	// does not resolve. Dependent rows must be removed first (or by FK
	// cascade); callers use the TransactionManager for the full cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
