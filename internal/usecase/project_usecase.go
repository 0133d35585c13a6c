package usecase

import (
	"context"
	"time"

	"amptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateProjectInput defines the data required to create a project.
// CreatedBy is never part of the input; it is injected from the caller identity.
type CreateProjectInput struct {
	Name        string
	Number      string
	Description string
	Status      entity.ProjectStatus
	Type        entity.ProjectType
	Budget      decimal.Decimal
	StartDate   time.Time
	EndDate     *time.Time
}

// ProjectPatch enumerates the mutable fields of a project. Nil fields are
// left untouched; identity and timestamp fields are not patchable by design.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *entity.ProjectStatus
	Type        *entity.ProjectType
	Budget      *decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
}

// --- Output DTOs ---

// CostSummary is the output of the cost aggregation engine for one project.
// All arithmetic is exact decimal; categories with no entries are absent
// from CostByCategory rather than present with zero.
type CostSummary struct {
	TotalCost      decimal.Decimal                          `json:"totalCost"`
	CostByCategory map[entity.CostCategory]decimal.Decimal `json:"costByCategory"`
	BudgetVariance decimal.Decimal                          `json:"budgetVariance"`
}

// ProjectUsecase defines the interface for project operations, including the
// cost aggregation engine.
type ProjectUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, input CreateProjectInput) (*entity.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	List(ctx context.Context) ([]*entity.Project, error)
	Update(ctx context.Context, id uuid.UUID, patch ProjectPatch) (*entity.Project, error)

	// Delete removes the project and cascades to its cost entries and change
	// orders within one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetCostSummary computes totalCost, costByCategory and budgetVariance
	// for the project from a single consistent snapshot of its entries.
	GetCostSummary(ctx context.Context, id uuid.UUID) (*CostSummary, error)
}
