package impl

import (
	"context"
	"testing"

	"amptrack/internal/domain/entity"
	domainerrors "amptrack/internal/domain/errors"
	"amptrack/internal/domain/repository"
	mockRepo "amptrack/internal/mocks/repository"
	"amptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// costCodeServiceFixtures holds all test dependencies for cost code service tests.
type costCodeServiceFixtures struct {
	service      usecase.CostCodeUsecase
	costCodeRepo *mockRepo.MockCostCodeRepository
}

func createTestCostCodeService(t *testing.T) costCodeServiceFixtures {
	costCodeRepo := mockRepo.NewMockCostCodeRepository(t)
	service := NewCostCodeService(costCodeRepo)

	return costCodeServiceFixtures{
		service:      service,
		costCodeRepo: costCodeRepo,
	}
}

func TestCostCodeService_Create_StartsActive(t *testing.T) {
	fx := createTestCostCodeService(t)

	ctx := context.Background()
	unitPrice := decimal.RequireFromString("85.00")
	input := usecase.CreateCostCodeInput{
		Code:        "16100",
		Description: "Raceway and boxes",
		Category:    entity.CostCategoryMaterials,
		UnitPrice:   &unitPrice,
		Unit:        "ft",
	}

	fx.costCodeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CostCode")).
		Run(func(ctx context.Context, code *entity.CostCode) {
			code.ID = uuid.New()
		}).
		Return(nil)

	code, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.True(t, code.IsActive)
	assert.Equal(t, "16100", code.Code)
	assert.Equal(t, entity.CostCategoryMaterials, code.Category)
}

func TestCostCodeService_Create_InvalidCategory(t *testing.T) {
	fx := createTestCostCodeService(t)

	ctx := context.Background()

	code, err := fx.service.Create(ctx, usecase.CreateCostCodeInput{
		Code:     "99999",
		Category: entity.CostCategory("overhead"),
	})

	assert.Nil(t, code)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCostCodeService_Create_CodeTaken(t *testing.T) {
	fx := createTestCostCodeService(t)

	ctx := context.Background()

	fx.costCodeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CostCode")).
		Return(domainerrors.ErrCostCodeTaken)

	code, err := fx.service.Create(ctx, usecase.CreateCostCodeInput{
		Code:     "16100",
		Category: entity.CostCategoryMaterials,
	})

	assert.Nil(t, code)
	assert.True(t, errors.Is(err, domainerrors.ErrCostCodeTaken))
}

func TestCostCodeService_List_ForwardsFilter(t *testing.T) {
	fx := createTestCostCodeService(t)

	ctx := context.Background()
	category := entity.CostCategoryLabor

	fx.costCodeRepo.EXPECT().
		FindAll(ctx, repository.CostCodeFilter{Category: &category, IncludeInactive: true}).
		Return([]*entity.CostCode{{ID: uuid.New(), Category: category}}, nil)

	codes, err := fx.service.List(ctx, usecase.ListCostCodesInput{
		Category:        &category,
		IncludeInactive: true,
	})

	require.NoError(t, err)
	assert.Len(t, codes, 1)
}

func TestCostCodeService_List_InvalidCategory(t *testing.T) {
	fx := createTestCostCodeService(t)

	ctx := context.Background()
	category := entity.CostCategory("misc")

	codes, err := fx.service.List(ctx, usecase.ListCostCodesInput{Category: &category})

	assert.Nil(t, codes)
	assert.Error(t, err)
}

func TestCostCodeService_Update_Deactivates(t *testing.T) {
	fx := createTestCostCodeService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.CostCode{
		ID:       id,
		Code:     "16100",
		Category: entity.CostCategoryMaterials,
		IsActive: true,
	}

	fx.costCodeRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.costCodeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.CostCode")).
		Return(nil)

	inactive := false
	code, err := fx.service.Update(ctx, id, usecase.CostCodePatch{IsActive: &inactive})

	require.NoError(t, err)
	assert.False(t, code.IsActive)
	assert.Equal(t, "16100", code.Code)
}

func TestCostCodeService_Update_NotFound(t *testing.T) {
	fx := createTestCostCodeService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.costCodeRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrCostCodeNotFound)

	desc := "LED retrofit"
	code, err := fx.service.Update(ctx, id, usecase.CostCodePatch{Description: &desc})

	assert.Nil(t, code)
	assert.True(t, errors.Is(err, domainerrors.ErrCostCodeNotFound))
}
