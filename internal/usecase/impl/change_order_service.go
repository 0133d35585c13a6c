package impl

import (
	"context"
	"log/slog"
	"time"

	"amptrack/internal/domain/entity"
	domainerrors "amptrack/internal/domain/errors"
	"amptrack/internal/domain/repository"
	"amptrack/internal/domain/service"
	"amptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// changeOrderService implements the ChangeOrderUsecase interface: a small
// state machine where pending is the only non-terminal state.
type changeOrderService struct {
	changeOrderRepo repository.ChangeOrderRepository
	projectRepo     repository.ProjectRepository
	publisher       service.EventPublisher
	logger          *slog.Logger
}

// ChangeOrderServiceParams holds dependencies for changeOrderService, injected by Fx.
type ChangeOrderServiceParams struct {
	fx.In

	ChangeOrderRepo repository.ChangeOrderRepository
	ProjectRepo     repository.ProjectRepository
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewChangeOrderService is the constructor for changeOrderService.
func NewChangeOrderService(params ChangeOrderServiceParams) usecase.ChangeOrderUsecase {
	return &changeOrderService{
		changeOrderRepo: params.ChangeOrderRepo,
		projectRepo:     params.ProjectRepo,
		publisher:       params.Publisher,
		logger:          params.Logger,
	}
}

// Create files a new change order. Caller-supplied status or requester in
// the payload never reach this layer: every order starts pending, requested
// by the authenticated caller, with the request date defaulting to now.
func (srv *changeOrderService) Create(ctx context.Context, actorID uuid.UUID, input usecase.CreateChangeOrderInput) (*entity.ChangeOrder, error) {
	if _, err := srv.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	order := &entity.ChangeOrder{
		ProjectID:   input.ProjectID,
		Number:      input.Number,
		Description: input.Description,
		Amount:      input.Amount,
		Status:      entity.ChangeOrderStatusPending,
		RequestedBy: actorID,
		RequestDate: time.Now(),
	}

	if err := srv.changeOrderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// List returns change orders newest first by request date, optionally
// restricted to one project.
func (srv *changeOrderService) List(ctx context.Context, projectID *uuid.UUID) ([]*entity.ChangeOrder, error) {
	orders, err := srv.changeOrderRepo.Find(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list change orders")
	}

	return orders, nil
}

// Update applies a partial patch to the non-status fields.
func (srv *changeOrderService) Update(ctx context.Context, id uuid.UUID, patch usecase.ChangeOrderPatch) (*entity.ChangeOrder, error) {
	order, err := srv.changeOrderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrChangeOrderNotFound) {
			return nil, domainerrors.ErrChangeOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find change order")
	}

	if patch.Description != nil {
		order.Description = *patch.Description
	}
	if patch.Amount != nil {
		order.Amount = *patch.Amount
	}

	if err := srv.changeOrderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrChangeOrderNotFound) {
			return nil, domainerrors.ErrChangeOrderNotFound
		}

		return nil, err
	}

	return order, nil
}

// Decide transitions a pending change order to approved or rejected.
// Approval stamps ApprovedBy with the acting identity and ApprovalDate with
// the current time; rejection records nothing beyond the status. The
// transition is compare-and-set at the store, so a decision on an order that
// is no longer pending fails with a conflict. The requester may decide their
// own change order; this system has no separation-of-duties rule.
func (srv *changeOrderService) Decide(ctx context.Context, actorID uuid.UUID, id uuid.UUID, status entity.ChangeOrderStatus) (*entity.ChangeOrder, error) {
	if !status.IsDecision() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be approved or rejected")
	}

	var approvedBy *uuid.UUID
	var approvalDate *time.Time
	if status == entity.ChangeOrderStatusApproved {
		now := time.Now()
		approvedBy = &actorID
		approvalDate = &now
	}

	if err := srv.changeOrderRepo.Decide(ctx, id, status, approvedBy, approvalDate); err != nil {
		switch {
		case errors.Is(err, repository.ErrChangeOrderNotFound):
			return nil, domainerrors.ErrChangeOrderNotFound
		case errors.Is(err, repository.ErrChangeOrderDecided):
			return nil, domainerrors.ErrChangeOrderDecided
		default:
			return nil, err
		}
	}

	order, err := srv.changeOrderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload change order")
	}

	srv.publish(ctx, &service.LedgerEvent{
		Type:       service.EventChangeOrderDecided,
		ProjectID:  order.ProjectID.String(),
		EntityID:   order.ID.String(),
		Status:     string(order.Status),
		Amount:     order.Amount.String(),
		ActorID:    actorID.String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return order, nil
}

// publish emits a ledger event after the write committed. Failures are
// logged only; the request already succeeded.
func (srv *changeOrderService) publish(ctx context.Context, event *service.LedgerEvent) {
	if srv.publisher == nil {
		return
	}
	if err := srv.publisher.PublishLedgerEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish ledger event",
			slog.String("type", event.Type),
			slog.String("entity_id", event.EntityID),
			slog.Any("error", err),
		)
	}
}
