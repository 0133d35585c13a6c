package impl

import (
	"context"

	"amptrack/internal/domain/entity"
	domainerrors "amptrack/internal/domain/errors"
	"amptrack/internal/domain/repository"
	"amptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// costCodeService implements the CostCodeUsecase interface.
type costCodeService struct {
	costCodeRepo repository.CostCodeRepository
}

// NewCostCodeService is the constructor for costCodeService.
func NewCostCodeService(costCodeRepo repository.CostCodeRepository) usecase.CostCodeUsecase {
	return &costCodeService{
		costCodeRepo: costCodeRepo,
	}
}

// Create persists a new cost code; codes start active.
func (srv *costCodeService) Create(ctx context.Context, input usecase.CreateCostCodeInput) (*entity.CostCode, error) {
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown cost category: " + string(input.Category))
	}

	code := &entity.CostCode{
		Code:        input.Code,
		Description: input.Description,
		Category:    input.Category,
		UnitPrice:   input.UnitPrice,
		Unit:        input.Unit,
		IsActive:    true,
	}

	if err := srv.costCodeRepo.Create(ctx, code); err != nil {
		return nil, err
	}

	return code, nil
}

// List returns cost codes, active only unless IncludeInactive is set,
// optionally filtered by category.
func (srv *costCodeService) List(ctx context.Context, input usecase.ListCostCodesInput) ([]*entity.CostCode, error) {
	if input.Category != nil && !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown cost category: " + string(*input.Category))
	}

	codes, err := srv.costCodeRepo.FindAll(ctx, repository.CostCodeFilter{
		Category:        input.Category,
		IncludeInactive: input.IncludeInactive,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cost codes")
	}

	return codes, nil
}

// Update applies a partial patch; setting IsActive false soft-deactivates
// the code without touching historical entries.
func (srv *costCodeService) Update(ctx context.Context, id uuid.UUID, patch usecase.CostCodePatch) (*entity.CostCode, error) {
	code, err := srv.costCodeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCostCodeNotFound) {
			return nil, domainerrors.ErrCostCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find cost code")
	}

	if patch.Description != nil {
		code.Description = *patch.Description
	}
	if patch.UnitPrice != nil {
		code.UnitPrice = patch.UnitPrice
	}
	if patch.Unit != nil {
		code.Unit = *patch.Unit
	}
	if patch.IsActive != nil {
		code.IsActive = *patch.IsActive
	}

	if err := srv.costCodeRepo.Update(ctx, code); err != nil {
		if errors.Is(err, repository.ErrCostCodeNotFound) {
			return nil, domainerrors.ErrCostCodeNotFound
		}

		return nil, err
	}

	return code, nil
}
