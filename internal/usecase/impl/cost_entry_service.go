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

// costEntryService implements the CostEntryUsecase interface.
type costEntryService struct {
	costEntryRepo repository.CostEntryRepository
	costCodeRepo  repository.CostCodeRepository
	projectRepo   repository.ProjectRepository
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// CostEntryServiceParams holds dependencies for costEntryService, injected by Fx.
type CostEntryServiceParams struct {
	fx.In

	CostEntryRepo repository.CostEntryRepository
	CostCodeRepo  repository.CostCodeRepository
	ProjectRepo   repository.ProjectRepository
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewCostEntryService is the constructor for costEntryService.
func NewCostEntryService(params CostEntryServiceParams) usecase.CostEntryUsecase {
	return &costEntryService{
		costEntryRepo: params.CostEntryRepo,
		costCodeRepo:  params.CostCodeRepo,
		projectRepo:   params.ProjectRepo,
		publisher:     params.Publisher,
		logger:        params.Logger,
	}
}

// Create records a new cost entry. EnteredBy always comes from the
// authenticated caller. Amount is authoritative for aggregation; quantity and
// unit cost are stored as given, never reconciled against it.
func (srv *costEntryService) Create(ctx context.Context, actorID uuid.UUID, input usecase.CreateCostEntryInput) (*entity.CostEntry, error) {
	if _, err := srv.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}
	if _, err := srv.costCodeRepo.FindByID(ctx, input.CostCodeID); err != nil {
		if errors.Is(err, repository.ErrCostCodeNotFound) {
			return nil, domainerrors.ErrCostCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find cost code")
	}

	entryDate := input.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}

	entry := &entity.CostEntry{
		ProjectID:     input.ProjectID,
		CostCodeID:    input.CostCodeID,
		Description:   input.Description,
		Amount:        input.Amount,
		Quantity:      input.Quantity,
		UnitCost:      input.UnitCost,
		EntryDate:     entryDate,
		AttachmentKey: input.AttachmentKey,
		EnteredBy:     actorID,
	}

	if err := srv.costEntryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	srv.publish(ctx, &service.LedgerEvent{
		Type:       service.EventCostEntryRecorded,
		ProjectID:  entry.ProjectID.String(),
		EntityID:   entry.ID.String(),
		Amount:     entry.Amount.String(),
		ActorID:    actorID.String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return entry, nil
}

// List returns entries newest first by entry date, optionally restricted to
// one project.
func (srv *costEntryService) List(ctx context.Context, projectID *uuid.UUID) ([]*entity.CostEntry, error) {
	entries, err := srv.costEntryRepo.Find(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cost entries")
	}

	return entries, nil
}

// Update applies a partial patch to a cost entry's mutable fields.
func (srv *costEntryService) Update(ctx context.Context, id uuid.UUID, patch usecase.CostEntryPatch) (*entity.CostEntry, error) {
	entry, err := srv.costEntryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCostEntryNotFound) {
			return nil, domainerrors.ErrCostEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find cost entry")
	}

	if patch.CostCodeID != nil {
		if _, err := srv.costCodeRepo.FindByID(ctx, *patch.CostCodeID); err != nil {
			if errors.Is(err, repository.ErrCostCodeNotFound) {
				return nil, domainerrors.ErrCostCodeNotFound
			}

			return nil, errors.Wrap(err, "failed to find cost code")
		}
		entry.CostCodeID = *patch.CostCodeID
	}
	if patch.Description != nil {
		entry.Description = *patch.Description
	}
	if patch.Amount != nil {
		entry.Amount = *patch.Amount
	}
	if patch.Quantity != nil {
		entry.Quantity = patch.Quantity
	}
	if patch.UnitCost != nil {
		entry.UnitCost = patch.UnitCost
	}
	if patch.EntryDate != nil {
		entry.EntryDate = *patch.EntryDate
	}
	if patch.AttachmentKey != nil {
		entry.AttachmentKey = *patch.AttachmentKey
	}

	if err := srv.costEntryRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrCostEntryNotFound) {
			return nil, domainerrors.ErrCostEntryNotFound
		}

		return nil, err
	}

	return entry, nil
}

// Delete hard-deletes a cost entry.
func (srv *costEntryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.costEntryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCostEntryNotFound) {
			return domainerrors.ErrCostEntryNotFound
		}

		return err
	}

	return nil
}

// publish emits a ledger event after the write committed. Failures are
// logged only; the request already succeeded.
func (srv *costEntryService) publish(ctx context.Context, event *service.LedgerEvent) {
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
