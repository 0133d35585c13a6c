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

// costCodeRepository implements the repository.CostCodeRepository interface using GORM.
type costCodeRepository struct {
	db *gorm.DB
}

// NewCostCodeRepository is the constructor for costCodeRepository.
func NewCostCodeRepository(db *gorm.DB) repository.CostCodeRepository {
	return &costCodeRepository{
		db: db,
	}
}

// Create persists a new cost code.
func (repo *costCodeRepository) Create(ctx context.Context, code *entity.CostCode) error {
	codeM := fromCostCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCostCodeTaken.WrapMessage("cost code already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required cost code information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cost code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt
	code.UpdatedAt = codeM.UpdatedAt

	return nil
}

// FindByID retrieves a single cost code by its unique ID.
func (repo *costCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CostCode, error) {
	var codeM model.CostCodeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCostCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find cost code by ID")
	}

	return toCostCodeDomain(&codeM), nil
}

// FindAll lists cost codes matching the filter, ordered by code.
func (repo *costCodeRepository) FindAll(ctx context.Context, filter repository.CostCodeFilter) ([]*entity.CostCode, error) {
	var codeModels []*model.CostCodeModel

	query := repo.db.WithContext(ctx).Order("code ASC")
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&codeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cost codes")
	}

	codes := make([]*entity.CostCode, 0, len(codeModels))
	for _, codeM := range codeModels {
		codes = append(codes, toCostCodeDomain(codeM))
	}

	return codes, nil
}

// Update persists the cost code's mutable fields and refreshes UpdatedAt.
func (repo *costCodeRepository) Update(ctx context.Context, code *entity.CostCode) error {
	codeM := fromCostCodeDomain(code)

	result := repo.db.WithContext(ctx).
		Model(&model.CostCodeModel{}).
		Where("id = ?", code.ID).
		Updates(map[string]any{
			"description": codeM.Description,
			"unit_price":  codeM.UnitPrice,
			"unit":        codeM.Unit,
			"is_active":   codeM.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cost code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCostCodeNotFound
	}

	var reloaded model.CostCodeModel
	if err := repo.db.WithContext(ctx).Where("id = ?", code.ID).First(&reloaded).Error; err == nil {
		code.UpdatedAt = reloaded.UpdatedAt
	}

	return nil
}

// --- Mapper Functions ---

// toCostCodeDomain converts a GORM CostCodeModel to a domain CostCode entity.
func toCostCodeDomain(data *model.CostCodeModel) *entity.CostCode {
	if data == nil {
		return nil
	}

	return &entity.CostCode{
		ID:          data.ID,
		Code:        data.Code,
		Description: data.Description,
		Category:    entity.CostCategory(data.Category),
		UnitPrice:   data.UnitPrice,
		Unit:        data.Unit,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromCostCodeDomain converts a domain CostCode entity to a GORM CostCodeModel.
func fromCostCodeDomain(data *entity.CostCode) *model.CostCodeModel {
	if data == nil {
		return nil
	}

	return &model.CostCodeModel{
		ID:          data.ID,
		Code:        data.Code,
		Description: data.Description,
		Category:    string(data.Category),
		UnitPrice:   data.UnitPrice,
		Unit:        data.Unit,
		IsActive:    data.IsActive,
	}
}
