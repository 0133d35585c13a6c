package impl

import (
	"context"

	"amptrack/internal/domain/entity"
	domainerrors "amptrack/internal/domain/errors"
	"amptrack/internal/domain/repository"
	"amptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// projectService implements the ProjectUsecase interface, including the cost
// aggregation engine.
type projectService struct {
	txManager     repository.TransactionManager
	projectRepo   repository.ProjectRepository
	costEntryRepo repository.CostEntryRepository
}

// ProjectServiceParams holds dependencies for projectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ProjectRepo   repository.ProjectRepository
	CostEntryRepo repository.CostEntryRepository
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		txManager:     params.TxManager,
		projectRepo:   params.ProjectRepo,
		costEntryRepo: params.CostEntryRepo,
	}
}

// Create persists a new project. CreatedBy always comes from the
// authenticated caller, never the payload.
func (srv *projectService) Create(ctx context.Context, actorID uuid.UUID, input usecase.CreateProjectInput) (*entity.Project, error) {
	status := input.Status
	if status == "" {
		status = entity.ProjectStatusActive
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown project status: " + string(status))
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown project type: " + string(input.Type))
	}

	project := &entity.Project{
		Name:        input.Name,
		Number:      input.Number,
		Description: input.Description,
		Status:      status,
		Type:        input.Type,
		Budget:      input.Budget,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CreatedBy:   actorID,
	}

	if err := srv.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Get retrieves one project by id.
func (srv *projectService) Get(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return project, nil
}

// List returns all projects, newest first.
func (srv *projectService) List(ctx context.Context) ([]*entity.Project, error) {
	projects, err := srv.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

// Update applies a partial patch to the project's mutable fields.
func (srv *projectService) Update(ctx context.Context, id uuid.UUID, patch usecase.ProjectPatch) (*entity.Project, error) {
	project, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown project status: " + string(*patch.Status))
		}
		project.Status = *patch.Status
	}
	if patch.Type != nil {
		if !patch.Type.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown project type: " + string(*patch.Type))
		}
		project.Type = *patch.Type
	}
	if patch.Budget != nil {
		project.Budget = *patch.Budget
	}
	if patch.StartDate != nil {
		project.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		project.EndDate = patch.EndDate
	}

	if err := srv.projectRepo.Update(ctx, project); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, err
	}

	return project, nil
}

// Delete removes the project and cascades to its cost entries and change
// orders in one transaction, so no orphaned ledger rows survive.
func (srv *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCostEntryRepository().DeleteByProject(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete project cost entries")
		}
		if err := repoFactory.NewChangeOrderRepository().DeleteByProject(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete project change orders")
		}

		return repoFactory.NewProjectRepository().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return domainerrors.ErrProjectNotFound
		}

		return err
	}

	return nil
}

// GetCostSummary computes the project's total cost, per-category breakdown
// and budget variance. Amounts are summed as exact decimals from a single
// query's rows, so the result reflects one consistent snapshot and no
// floating-point drift.
func (srv *projectService) GetCostSummary(ctx context.Context, id uuid.UUID) (*usecase.CostSummary, error) {
	project, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := srv.costEntryRepo.FindCostLines(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cost lines")
	}

	totalCost := decimal.Zero
	costByCategory := make(map[entity.CostCategory]decimal.Decimal)
	for _, line := range lines {
		totalCost = totalCost.Add(line.Amount)
		costByCategory[line.Category] = costByCategory[line.Category].Add(line.Amount)
	}

	return &usecase.CostSummary{
		TotalCost:      totalCost,
		CostByCategory: costByCategory,
		BudgetVariance: project.Budget.Sub(totalCost),
	}, nil
}
