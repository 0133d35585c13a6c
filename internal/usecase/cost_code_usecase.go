package usecase

import (
	"context"

	"amptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCostCodeInput defines the data required to create a cost code.
type CreateCostCodeInput struct {
	Code        string
	Description string
	Category    entity.CostCategory
	UnitPrice   *decimal.Decimal
	Unit        string
}

// CostCodePatch enumerates the mutable fields of a cost code. The Code and
// Category are immutable once entries reference them; deactivation happens
// through IsActive rather than deletion.
type CostCodePatch struct {
	Description *string
	UnitPrice   *decimal.Decimal
	Unit        *string
	IsActive    *bool
}

// ListCostCodesInput narrows cost code listings.
type ListCostCodesInput struct {
	Category        *entity.CostCategory
	IncludeInactive bool
}

// CostCodeUsecase defines the interface for cost code reference data operations.
type CostCodeUsecase interface {
	Create(ctx context.Context, input CreateCostCodeInput) (*entity.CostCode, error)
	List(ctx context.Context, input ListCostCodesInput) ([]*entity.CostCode, error)
	Update(ctx context.Context, id uuid.UUID, patch CostCodePatch) (*entity.CostCode, error)
}
