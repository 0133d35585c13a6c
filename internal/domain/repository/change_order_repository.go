package repository

import (
	"context"
	"time"

	"amptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrChangeOrderNotFound is returned when a change order id does not resolve.
	ErrChangeOrderNotFound = errors.New("change order not found")
	// ErrChangeOrderDecided is returned when a decision targets a change order
	// that is no longer pending. The transition is compare-and-set, so two
	// near-simultaneous decisions serialize to exactly one winner.
	ErrChangeOrderDecided = errors.New("change order already decided")
)

// ChangeOrderRepository defines persistence operations for change orders.
type ChangeOrderRepository interface {
	// Create persists a new change order and fills in generated fields.
	Create(ctx context.Context, order *entity.ChangeOrder) error

	// FindByID retrieves a single change order. Returns
	// ErrChangeOrderNotFound when the id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ChangeOrder, error)

	// Find lists change orders ordered by request date, newest first. A
	// non-nil projectID restricts results to that project.
	Find(ctx context.Context, projectID *uuid.UUID) ([]*entity.ChangeOrder, error)

	// Update persists mutable, non-status fields (description, amount) and
	// refreshes UpdatedAt. Returns ErrChangeOrderNotFound when the id does
	// not resolve.
	Update(ctx context.Context, order *entity.ChangeOrder) error

	// Decide transitions a pending change order into a terminal status using
	// compare-and-set on the current status. approvedBy and approvalDate are
	// written only for approvals and must both be non-nil in that case.
	// Returns ErrChangeOrderNotFound when the id does not resolve and
	// ErrChangeOrderDecided when the order is no longer pending.
	Decide(ctx context.Context, id uuid.UUID, status entity.ChangeOrderStatus, approvedBy *uuid.UUID, approvalDate *time.Time) error

	// DeleteByProject hard-deletes all change orders of a project. Used by
	// the project cascade delete inside a transaction.
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}
