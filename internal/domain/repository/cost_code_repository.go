package repository

import (
	"context"

	"amptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCostCodeNotFound is returned when a cost code id does not resolve.
var ErrCostCodeNotFound = errors.New("cost code not found")

// CostCodeFilter narrows cost code listings.
type CostCodeFilter struct {
	// Category restricts results to one aggregation category when non-nil.
	Category *entity.CostCategory
	// IncludeInactive also returns soft-deactivated codes when true.
	IncludeInactive bool
}

// CostCodeRepository defines persistence operations for the cost code
// reference table. Codes are soft-deactivated, never deleted.
type CostCodeRepository interface {
	// Create persists a new cost code and fills in generated fields.
	Create(ctx context.Context, code *entity.CostCode) error

	// FindByID retrieves a single cost code. Returns ErrCostCodeNotFound
	// when the id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CostCode, error)

	// FindAll lists cost codes matching the filter, ordered by code.
	FindAll(ctx context.Context, filter CostCodeFilter) ([]*entity.CostCode, error)

	// Update persists mutable fields of an existing cost code, including the
	// IsActive flag, and refreshes UpdatedAt. Returns ErrCostCodeNotFound
	// when the id does not resolve.
	Update(ctx context.Context, code *entity.CostCode) error
}
