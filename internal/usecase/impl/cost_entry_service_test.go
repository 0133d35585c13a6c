package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"amptrack/internal/domain/entity"
	domainerrors "amptrack/internal/domain/errors"
	"amptrack/internal/domain/repository"
	"amptrack/internal/domain/service"
	mockRepo "amptrack/internal/mocks/repository"
	mockSvc "amptrack/internal/mocks/service"
	"amptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// costEntryServiceFixtures holds all test dependencies for cost entry service tests.
type costEntryServiceFixtures struct {
	service       usecase.CostEntryUsecase
	costEntryRepo *mockRepo.MockCostEntryRepository
	costCodeRepo  *mockRepo.MockCostCodeRepository
	projectRepo   *mockRepo.MockProjectRepository
	publisher     *mockSvc.MockEventPublisher
}

func createTestCostEntryService(t *testing.T) costEntryServiceFixtures {
	costEntryRepo := mockRepo.NewMockCostEntryRepository(t)
	costCodeRepo := mockRepo.NewMockCostCodeRepository(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCostEntryService(CostEntryServiceParams{
		CostEntryRepo: costEntryRepo,
		CostCodeRepo:  costCodeRepo,
		ProjectRepo:   projectRepo,
		Publisher:     publisher,
		Logger:        logger,
	})

	return costEntryServiceFixtures{
		service:       svc,
		costEntryRepo: costEntryRepo,
		costCodeRepo:  costCodeRepo,
		projectRepo:   projectRepo,
		publisher:     publisher,
	}
}

func TestCostEntryService_Create_Success(t *testing.T) {
	fx := createTestCostEntryService(t)

	ctx := context.Background()
	actorID := uuid.New()
	projectID := uuid.New()
	costCodeID := uuid.New()
	input := usecase.CreateCostEntryInput{
		ProjectID:   projectID,
		CostCodeID:  costCodeID,
		Description: "Conduit run, level 2",
		Amount:      decimal.RequireFromString("640.00"),
		EntryDate:   time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(&entity.Project{ID: projectID}, nil)
	fx.costCodeRepo.EXPECT().
		FindByID(ctx, costCodeID).
		Return(&entity.CostCode{ID: costCodeID, Category: entity.CostCategoryLabor}, nil)

	fx.costEntryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CostEntry")).
		Run(func(ctx context.Context, entry *entity.CostEntry) {
			entry.ID = uuid.New()
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Run(func(ctx context.Context, event *service.LedgerEvent) {
			assert.Equal(t, service.EventCostEntryRecorded, event.Type)
			assert.Equal(t, projectID.String(), event.ProjectID)
			assert.Equal(t, "640", event.Amount)
		}).
		Return(nil)

	entry, err := fx.service.Create(ctx, actorID, input)

	require.NoError(t, err)
	assert.Equal(t, actorID, entry.EnteredBy)
	assert.Equal(t, input.EntryDate, entry.EntryDate)
}

func TestCostEntryService_Create_DefaultsEntryDate(t *testing.T) {
	fx := createTestCostEntryService(t)

	ctx := context.Background()
	projectID := uuid.New()
	costCodeID := uuid.New()

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(&entity.Project{ID: projectID}, nil)
	fx.costCodeRepo.EXPECT().
		FindByID(ctx, costCodeID).
		Return(&entity.CostCode{ID: costCodeID}, nil)
	fx.costEntryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CostEntry")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Return(nil)

	entry, err := fx.service.Create(ctx, uuid.New(), usecase.CreateCostEntryInput{
		ProjectID:  projectID,
		CostCodeID: costCodeID,
		Amount:     decimal.RequireFromString("10.00"),
	})

	require.NoError(t, err)
	assert.False(t, entry.EntryDate.IsZero())
}

func TestCostEntryService_Create_UnknownCostCode(t *testing.T) {
	fx := createTestCostEntryService(t)

	ctx := context.Background()
	projectID := uuid.New()
	costCodeID := uuid.New()

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(&entity.Project{ID: projectID}, nil)
	fx.costCodeRepo.EXPECT().
		FindByID(ctx, costCodeID).
		Return(nil, repository.ErrCostCodeNotFound)

	entry, err := fx.service.Create(ctx, uuid.New(), usecase.CreateCostEntryInput{
		ProjectID:  projectID,
		CostCodeID: costCodeID,
		Amount:     decimal.RequireFromString("10.00"),
	})

	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrCostCodeNotFound))
}

func TestCostEntryService_Create_PublishFailureDoesNotFailRequest(t *testing.T) {
	fx := createTestCostEntryService(t)

	ctx := context.Background()
	projectID := uuid.New()
	costCodeID := uuid.New()

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(&entity.Project{ID: projectID}, nil)
	fx.costCodeRepo.EXPECT().
		FindByID(ctx, costCodeID).
		Return(&entity.CostCode{ID: costCodeID}, nil)
	fx.costEntryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CostEntry")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Return(errors.New("broker unavailable"))

	entry, err := fx.service.Create(ctx, uuid.New(), usecase.CreateCostEntryInput{
		ProjectID:  projectID,
		CostCodeID: costCodeID,
		Amount:     decimal.RequireFromString("25.00"),
	})

	require.NoError(t, err)
	assert.NotNil(t, entry)
}

func TestCostEntryService_Update_RevalidatesCostCode(t *testing.T) {
	fx := createTestCostEntryService(t)

	ctx := context.Background()
	id := uuid.New()
	newCodeID := uuid.New()
	existing := &entity.CostEntry{
		ID:         id,
		ProjectID:  uuid.New(),
		CostCodeID: uuid.New(),
		Amount:     decimal.RequireFromString("100.00"),
		EntryDate:  time.Now(),
	}

	fx.costEntryRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.costCodeRepo.EXPECT().
		FindByID(ctx, newCodeID).
		Return(nil, repository.ErrCostCodeNotFound)

	entry, err := fx.service.Update(ctx, id, usecase.CostEntryPatch{CostCodeID: &newCodeID})

	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrCostCodeNotFound))
}

func TestCostEntryService_Update_PatchesAmount(t *testing.T) {
	fx := createTestCostEntryService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.CostEntry{
		ID:          id,
		ProjectID:   uuid.New(),
		CostCodeID:  uuid.New(),
		Description: "Panel labor",
		Amount:      decimal.RequireFromString("100.00"),
		EntryDate:   time.Now(),
	}

	fx.costEntryRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.costEntryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.CostEntry")).
		Return(nil)

	newAmount := decimal.RequireFromString("125.50")
	entry, err := fx.service.Update(ctx, id, usecase.CostEntryPatch{Amount: &newAmount})

	require.NoError(t, err)
	assert.True(t, entry.Amount.Equal(newAmount))
	assert.Equal(t, "Panel labor", entry.Description)
}

func TestCostEntryService_Delete_NotFound(t *testing.T) {
	fx := createTestCostEntryService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.costEntryRepo.EXPECT().
		Delete(ctx, id).
		Return(repository.ErrCostEntryNotFound)

	err := fx.service.Delete(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrCostEntryNotFound))
}

func TestCostEntryService_List_NoFilter(t *testing.T) {
	fx := createTestCostEntryService(t)

	ctx := context.Background()

	fx.costEntryRepo.EXPECT().
		Find(ctx, (*uuid.UUID)(nil)).
		Return([]*entity.CostEntry{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	entries, err := fx.service.List(ctx, nil)

	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
