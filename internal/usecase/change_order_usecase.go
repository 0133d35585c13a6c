package usecase

import (
	"context"

	"amptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateChangeOrderInput defines the data required to file a change order.
// Status and RequestedBy are never taken from the caller's payload: every
// change order starts pending, requested by the authenticated identity.
type CreateChangeOrderInput struct {
	ProjectID   uuid.UUID
	Number      string
	Description string
	Amount      decimal.Decimal
}

// ChangeOrderPatch enumerates the mutable non-status fields of a change
// order. Status moves only through Decide.
type ChangeOrderPatch struct {
	Description *string
	Amount      *decimal.Decimal
}

// ChangeOrderUsecase defines the interface for the change order approval
// workflow.
type ChangeOrderUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, input CreateChangeOrderInput) (*entity.ChangeOrder, error)

	// List returns change orders newest first by request date, optionally
	// restricted to one project.
	List(ctx context.Context, projectID *uuid.UUID) ([]*entity.ChangeOrder, error)

	Update(ctx context.Context, id uuid.UUID, patch ChangeOrderPatch) (*entity.ChangeOrder, error)

	// Decide transitions a pending change order to approved or rejected.
	// Approval stamps the acting identity and the current time; rejection
	// records nothing beyond the status. A decision on a non-pending order
	// fails with a conflict. The requester is allowed to decide their own
	// change order; no separation-of-duties check exists in this system.
	Decide(ctx context.Context, actorID uuid.UUID, id uuid.UUID, status entity.ChangeOrderStatus) (*entity.ChangeOrder, error)
}
