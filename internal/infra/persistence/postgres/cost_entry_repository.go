package postgres

import (
	"context"

	"amptrack/internal/domain/entity"
	domainerrors "amptrack/internal/domain/errors"
	"amptrack/internal/domain/repository"
	"amptrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// costEntryRepository implements the repository.CostEntryRepository interface using GORM.
type costEntryRepository struct {
	db *gorm.DB
}

// NewCostEntryRepository is the constructor for costEntryRepository.
func NewCostEntryRepository(db *gorm.DB) repository.CostEntryRepository {
	return &costEntryRepository{
		db: db,
	}
}

// Create persists a new cost entry.
func (repo *costEntryRepository) Create(ctx context.Context, entry *entity.CostEntry) error {
	entryM := fromCostEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIntegrityViolation.WrapMessage("invalid project or cost code reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required cost entry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cost entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindByID retrieves a single cost entry by its unique ID.
func (repo *costEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CostEntry, error) {
	var entryM model.CostEntryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCostEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find cost entry by ID")
	}

	return toCostEntryDomain(&entryM), nil
}

// Find lists cost entries ordered by entry date, newest first. A non-nil
// projectID restricts results to that project.
func (repo *costEntryRepository) Find(ctx context.Context, projectID *uuid.UUID) ([]*entity.CostEntry, error) {
	var entryModels []*model.CostEntryModel

	query := repo.db.WithContext(ctx).Order("entry_date DESC")
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cost entries")
	}

	entries := make([]*entity.CostEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toCostEntryDomain(entryM))
	}

	return entries, nil
}

// costLineRow scans the join between cost entries and their cost codes.
type costLineRow struct {
	Category string
	Amount   decimal.Decimal
}

// FindCostLines returns one (category, amount) line per cost entry of the
// project. A single query keeps the aggregation snapshot consistent.
func (repo *costEntryRepository) FindCostLines(ctx context.Context, projectID uuid.UUID) ([]repository.CostLine, error) {
	var rows []costLineRow

	if err := repo.db.WithContext(ctx).
		Model(&model.CostEntryModel{}).
		Select("cost_codes.category AS category, cost_entries.amount AS amount").
		Joins("JOIN cost_codes ON cost_codes.id = cost_entries.cost_code_id").
		Where("cost_entries.project_id = ?", projectID).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load cost lines")
	}

	lines := make([]repository.CostLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, repository.CostLine{
			Category: entity.CostCategory(row.Category),
			Amount:   row.Amount,
		})
	}

	return lines, nil
}

// Update persists the cost entry's mutable fields and refreshes UpdatedAt.
func (repo *costEntryRepository) Update(ctx context.Context, entry *entity.CostEntry) error {
	entryM := fromCostEntryDomain(entry)

	result := repo.db.WithContext(ctx).
		Model(&model.CostEntryModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"cost_code_id":   entryM.CostCodeID,
			"description":    entryM.Description,
			"amount":         entryM.Amount,
			"quantity":       entryM.Quantity,
			"unit_cost":      entryM.UnitCost,
			"entry_date":     entryM.EntryDate,
			"attachment_key": entryM.AttachmentKey,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrIntegrityViolation.WrapMessage("invalid cost code reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cost entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCostEntryNotFound
	}

	var reloaded model.CostEntryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", entry.ID).First(&reloaded).Error; err == nil {
		entry.UpdatedAt = reloaded.UpdatedAt
	}

	return nil
}

// Delete hard-deletes a cost entry.
func (repo *costEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CostEntryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cost entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCostEntryNotFound
	}

	return nil
}

// DeleteByProject hard-deletes all cost entries of a project. Zero rows is
// fine; the project may simply have no entries yet.
func (repo *costEntryRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&model.CostEntryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cost entries by project")
	}

	return nil
}

// --- Mapper Functions ---

// toCostEntryDomain converts a GORM CostEntryModel to a domain CostEntry entity.
func toCostEntryDomain(data *model.CostEntryModel) *entity.CostEntry {
	if data == nil {
		return nil
	}

	return &entity.CostEntry{
		ID:            data.ID,
		ProjectID:     data.ProjectID,
		CostCodeID:    data.CostCodeID,
		Description:   data.Description,
		Amount:        data.Amount,
		Quantity:      data.Quantity,
		UnitCost:      data.UnitCost,
		EntryDate:     data.EntryDate,
		AttachmentKey: data.AttachmentKey,
		EnteredBy:     data.EnteredBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCostEntryDomain converts a domain CostEntry entity to a GORM CostEntryModel.
func fromCostEntryDomain(data *entity.CostEntry) *model.CostEntryModel {
	if data == nil {
		return nil
	}

	return &model.CostEntryModel{
		ID:            data.ID,
		ProjectID:     data.ProjectID,
		CostCodeID:    data.CostCodeID,
		Description:   data.Description,
		Amount:        data.Amount,
		Quantity:      data.Quantity,
		UnitCost:      data.UnitCost,
		EntryDate:     data.EntryDate,
		AttachmentKey: data.AttachmentKey,
		EnteredBy:     data.EnteredBy,
	}
}
