package impl

import (
	"context"
	"testing"
	"time"

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

// projectServiceFixtures holds all test dependencies for project service tests.
type projectServiceFixtures struct {
	service       usecase.ProjectUsecase
	txManager     *mockRepo.MockTransactionManager
	projectRepo   *mockRepo.MockProjectRepository
	costEntryRepo *mockRepo.MockCostEntryRepository
}

func createTestProjectService(t *testing.T) projectServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	costEntryRepo := mockRepo.NewMockCostEntryRepository(t)

	service := NewProjectService(ProjectServiceParams{
		TxManager:     txManager,
		ProjectRepo:   projectRepo,
		CostEntryRepo: costEntryRepo,
	})

	return projectServiceFixtures{
		service:       service,
		txManager:     txManager,
		projectRepo:   projectRepo,
		costEntryRepo: costEntryRepo,
	}
}

func TestProjectService_Create_Success(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	actorID := uuid.New()
	input := usecase.CreateProjectInput{
		Name:      "Substation Retrofit",
		Number:    "P-2026-014",
		Type:      entity.ProjectTypeIndustrial,
		Budget:    decimal.RequireFromString("250000.00"),
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	fx.projectRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		Run(func(ctx context.Context, project *entity.Project) {
			project.ID = uuid.New()
		}).
		Return(nil)

	project, err := fx.service.Create(ctx, actorID, input)

	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, actorID, project.CreatedBy)
	assert.Equal(t, entity.ProjectStatusActive, project.Status)
	assert.Equal(t, input.Number, project.Number)
	assert.True(t, project.Budget.Equal(input.Budget))
}

func TestProjectService_Create_InvalidType(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	input := usecase.CreateProjectInput{
		Name:      "Mystery Build",
		Number:    "P-2026-015",
		Type:      entity.ProjectType("nautical"),
		Budget:    decimal.RequireFromString("1000.00"),
		StartDate: time.Now(),
	}

	project, err := fx.service.Create(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, project)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestProjectService_Get_NotFound(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.projectRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrProjectNotFound)

	project, err := fx.service.Get(ctx, id)

	assert.Nil(t, project)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
}

func TestProjectService_Update_PatchesOnlyGivenFields(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Project{
		ID:        id,
		Name:      "Warehouse Lighting",
		Number:    "P-2026-002",
		Status:    entity.ProjectStatusActive,
		Type:      entity.ProjectTypeCommercial,
		Budget:    decimal.RequireFromString("80000.00"),
		StartDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}

	fx.projectRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.projectRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Project")).
		Return(nil)

	newStatus := entity.ProjectStatusCompleted
	project, err := fx.service.Update(ctx, id, usecase.ProjectPatch{Status: &newStatus})

	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusCompleted, project.Status)
	assert.Equal(t, "Warehouse Lighting", project.Name)
	assert.True(t, project.Budget.Equal(decimal.RequireFromString("80000.00")))
}

func TestProjectService_Update_InvalidStatus(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.projectRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Project{ID: id, Status: entity.ProjectStatusActive}, nil)

	badStatus := entity.ProjectStatus("paused")
	project, err := fx.service.Update(ctx, id, usecase.ProjectPatch{Status: &badStatus})

	assert.Error(t, err)
	assert.Nil(t, project)
}

func TestProjectService_Delete_CascadesInOneTransaction(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProjectRepo := mockRepo.NewMockProjectRepository(t)
			mockCostEntryRepo := mockRepo.NewMockCostEntryRepository(t)
			mockChangeOrderRepo := mockRepo.NewMockChangeOrderRepository(t)

			mockFactory.EXPECT().NewProjectRepository().Return(mockProjectRepo)
			mockFactory.EXPECT().NewCostEntryRepository().Return(mockCostEntryRepo)
			mockFactory.EXPECT().NewChangeOrderRepository().Return(mockChangeOrderRepo)

			mockCostEntryRepo.EXPECT().DeleteByProject(ctx, id).Return(nil)
			mockChangeOrderRepo.EXPECT().DeleteByProject(ctx, id).Return(nil)
			mockProjectRepo.EXPECT().Delete(ctx, id).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, id)

	require.NoError(t, err)
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrProjectNotFound)

	err := fx.service.Delete(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
}

func TestProjectService_GetCostSummary_SumsByCategory(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	id := uuid.New()
	project := &entity.Project{
		ID:     id,
		Budget: decimal.RequireFromString("10000.00"),
	}

	fx.projectRepo.EXPECT().FindByID(ctx, id).Return(project, nil)
	fx.costEntryRepo.EXPECT().
		FindCostLines(ctx, id).
		Return([]repository.CostLine{
			{Category: entity.CostCategoryLabor, Amount: decimal.RequireFromString("2500.00")},
			{Category: entity.CostCategoryLabor, Amount: decimal.RequireFromString("1500.00")},
			{Category: entity.CostCategoryMaterials, Amount: decimal.RequireFromString("3000.00")},
		}, nil)

	summary, err := fx.service.GetCostSummary(ctx, id)

	require.NoError(t, err)
	assert.True(t, summary.TotalCost.Equal(decimal.RequireFromString("7000.00")))
	assert.True(t, summary.BudgetVariance.Equal(decimal.RequireFromString("3000.00")))
	assert.Len(t, summary.CostByCategory, 2)
	assert.True(t, summary.CostByCategory[entity.CostCategoryLabor].Equal(decimal.RequireFromString("4000.00")))
	assert.True(t, summary.CostByCategory[entity.CostCategoryMaterials].Equal(decimal.RequireFromString("3000.00")))

	// Categories without entries stay absent rather than zero-valued.
	_, ok := summary.CostByCategory[entity.CostCategoryEquipment]
	assert.False(t, ok)
}

func TestProjectService_GetCostSummary_NoEntries(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	id := uuid.New()
	project := &entity.Project{
		ID:     id,
		Budget: decimal.RequireFromString("5000.00"),
	}

	fx.projectRepo.EXPECT().FindByID(ctx, id).Return(project, nil)
	fx.costEntryRepo.EXPECT().FindCostLines(ctx, id).Return(nil, nil)

	summary, err := fx.service.GetCostSummary(ctx, id)

	require.NoError(t, err)
	assert.True(t, summary.TotalCost.IsZero())
	assert.True(t, summary.BudgetVariance.Equal(project.Budget))
	assert.Empty(t, summary.CostByCategory)
}

func TestProjectService_GetCostSummary_ProjectNotFound(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.projectRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrProjectNotFound)

	summary, err := fx.service.GetCostSummary(ctx, id)

	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
}
