package postgres

import (
	"context"

	"amptrack/internal/domain/entity"
	domainerrors "amptrack/internal/domain/errors"
	"amptrack/internal/domain/repository"
	"amptrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// projectRepository implements the repository.ProjectRepository interface using GORM.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create persists a new project.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProjectNumberTaken.WrapMessage("project number already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required project information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	// Update the entity with generated values
	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// FindByID retrieves a single project by its unique ID.
func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by ID")
	}

	return toProjectDomain(&projectM), nil
}

// FindAll lists projects ordered by creation time, newest first.
func (repo *projectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

// Update persists the project's mutable fields and refreshes UpdatedAt.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", project.ID).
		Updates(map[string]any{
			"name":        projectM.Name,
			"description": projectM.Description,
			"status":      projectM.Status,
			"type":        projectM.Type,
			"budget":      projectM.Budget,
			"start_date":  projectM.StartDate,
			"end_date":    projectM.EndDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	// Reload timestamps so the returned entity matches the row.
	var reloaded model.ProjectModel
	if err := repo.db.WithContext(ctx).Where("id = ?", project.ID).First(&reloaded).Error; err == nil {
		project.UpdatedAt = reloaded.UpdatedAt
	}

	return nil
}

// Delete hard-deletes a project. Dependent rows are removed by the caller's
// transaction (or the FK cascade as backstop).
func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProjectModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrIntegrityViolation.WrapMessage("project still referenced")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProjectDomain converts a GORM ProjectModel to a domain Project entity.
func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	return &entity.Project{
		ID:          data.ID,
		Name:        data.Name,
		Number:      data.Number,
		Description: data.Description,
		Status:      entity.ProjectStatus(data.Status),
		Type:        entity.ProjectType(data.Type),
		Budget:      data.Budget,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProjectDomain converts a domain Project entity to a GORM ProjectModel.
func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:          data.ID,
		Name:        data.Name,
		Number:      data.Number,
		Description: data.Description,
		Status:      string(data.Status),
		Type:        string(data.Type),
		Budget:      data.Budget,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		CreatedBy:   data.CreatedBy,
	}
}
