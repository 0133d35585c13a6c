package repository

import (
	"context"

	"amptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrCostEntryNotFound is returned when a cost entry id does not resolve.
var ErrCostEntryNotFound = errors.New("cost entry not found")

// CostLine is one (category, amount) pair produced by joining a cost entry
// to its cost code. The aggregation engine sums these lines; fetching them
// in a single query gives each summary a consistent snapshot.
type CostLine struct {
	Category entity.CostCategory
	Amount   decimal.Decimal
}

// CostEntryRepository defines persistence operations for cost entries.
type CostEntryRepository interface {
	// Create persists a new cost entry and fills in generated fields.
	Create(ctx context.Context, entry *entity.CostEntry) error

	// FindByID retrieves a single cost entry. Returns ErrCostEntryNotFound
	// when the id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CostEntry, error)

	// Find lists cost entries ordered by entry date, newest first. A non-nil
	// projectID restricts results to that project. The ordering is a contract
	// the client depends on for "recent entries" displays.
	Find(ctx context.Context, projectID *uuid.UUID) ([]*entity.CostEntry, error)

	// FindCostLines returns one line per cost entry of the project, joined to
	// its cost code's category, in a single query.
	FindCostLines(ctx context.Context, projectID uuid.UUID) ([]CostLine, error)

	// Update persists mutable fields of an existing cost entry and refreshes
	// UpdatedAt. Returns ErrCostEntryNotFound when the id does not resolve.
	Update(ctx context.Context, entry *entity.CostEntry) error

	// Delete hard-deletes a cost entry. Returns ErrCostEntryNotFound when the
	// id does not resolve.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByProject hard-deletes all cost entries of a project. Used by the
	// project cascade delete inside a transaction.
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}
