package usecase

import (
	"context"
	"time"

	"amptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCostEntryInput defines the data required to record a cost entry.
// EnteredBy is never part of the input; it is injected from the caller identity.
type CreateCostEntryInput struct {
	ProjectID     uuid.UUID
	CostCodeID    uuid.UUID
	Description   string
	Amount        decimal.Decimal
	Quantity      *decimal.Decimal
	UnitCost      *decimal.Decimal
	EntryDate     time.Time
	AttachmentKey string
}

// CostEntryPatch enumerates the mutable fields of a cost entry. The owning
// project and the entering identity are immutable.
type CostEntryPatch struct {
	CostCodeID    *uuid.UUID
	Description   *string
	Amount        *decimal.Decimal
	Quantity      *decimal.Decimal
	UnitCost      *decimal.Decimal
	EntryDate     *time.Time
	AttachmentKey *string
}

// CostEntryUsecase defines the interface for cost entry operations.
type CostEntryUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, input CreateCostEntryInput) (*entity.CostEntry, error)

	// List returns entries newest first by entry date, optionally restricted
	// to one project.
	List(ctx context.Context, projectID *uuid.UUID) ([]*entity.CostEntry, error)

	Update(ctx context.Context, id uuid.UUID, patch CostEntryPatch) (*entity.CostEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
