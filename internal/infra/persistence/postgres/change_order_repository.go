package postgres

import (
	"context"
	"time"

	"amptrack/internal/domain/entity"
	domainerrors "amptrack/internal/domain/errors"
	"amptrack/internal/domain/repository"
	"amptrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// changeOrderRepository implements the repository.ChangeOrderRepository interface using GORM.
type changeOrderRepository struct {
	db *gorm.DB
}

// NewChangeOrderRepository is the constructor for changeOrderRepository.
func NewChangeOrderRepository(db *gorm.DB) repository.ChangeOrderRepository {
	return &changeOrderRepository{
		db: db,
	}
}

// Create persists a new change order.
func (repo *changeOrderRepository) Create(ctx context.Context, order *entity.ChangeOrder) error {
	orderM := fromChangeOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIntegrityViolation.WrapMessage("invalid project reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required change order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create change order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single change order by its unique ID.
func (repo *changeOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ChangeOrder, error) {
	var orderM model.ChangeOrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChangeOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find change order by ID")
	}

	return toChangeOrderDomain(&orderM), nil
}

// Find lists change orders ordered by request date, newest first. A non-nil
// projectID restricts results to that project.
func (repo *changeOrderRepository) Find(ctx context.Context, projectID *uuid.UUID) ([]*entity.ChangeOrder, error) {
	var orderModels []*model.ChangeOrderModel

	query := repo.db.WithContext(ctx).Order("request_date DESC")
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list change orders")
	}

	orders := make([]*entity.ChangeOrder, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toChangeOrderDomain(orderM))
	}

	return orders, nil
}

// Update persists the change order's description and amount. Status moves
// only through Decide.
func (repo *changeOrderRepository) Update(ctx context.Context, order *entity.ChangeOrder) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChangeOrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"description": order.Description,
			"amount":      order.Amount,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update change order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChangeOrderNotFound
	}

	var reloaded model.ChangeOrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", order.ID).First(&reloaded).Error; err == nil {
		order.UpdatedAt = reloaded.UpdatedAt
	}

	return nil
}

// Decide moves a pending change order to a terminal status. The status guard
// in the WHERE clause makes the transition a compare-and-set, so two
// concurrent decisions cannot both win.
func (repo *changeOrderRepository) Decide(ctx context.Context, id uuid.UUID, status entity.ChangeOrderStatus, approvedBy *uuid.UUID, approvalDate *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChangeOrderModel{}).
		Where("id = ? AND status = ?", id, entity.ChangeOrderStatusPending).
		Updates(map[string]any{
			"status":        status,
			"approved_by":   approvedBy,
			"approval_date": approvalDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decide change order")
	}
	if result.RowsAffected == 0 {
		// Either the order does not exist or it already left pending.
		var orderM model.ChangeOrderModel
		if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrChangeOrderNotFound
			}

			return errors.Wrap(err, "failed to check change order status")
		}

		return repository.ErrChangeOrderDecided
	}

	return nil
}

// DeleteByProject hard-deletes all change orders of a project.
func (repo *changeOrderRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&model.ChangeOrderModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete change orders by project")
	}

	return nil
}

// --- Mapper Functions ---

// toChangeOrderDomain converts a GORM ChangeOrderModel to a domain ChangeOrder entity.
func toChangeOrderDomain(data *model.ChangeOrderModel) *entity.ChangeOrder {
	if data == nil {
		return nil
	}

	return &entity.ChangeOrder{
		ID:           data.ID,
		ProjectID:    data.ProjectID,
		Number:       data.Number,
		Description:  data.Description,
		Amount:       data.Amount,
		Status:       entity.ChangeOrderStatus(data.Status),
		RequestedBy:  data.RequestedBy,
		RequestDate:  data.RequestDate,
		ApprovedBy:   data.ApprovedBy,
		ApprovalDate: data.ApprovalDate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromChangeOrderDomain converts a domain ChangeOrder entity to a GORM ChangeOrderModel.
func fromChangeOrderDomain(data *entity.ChangeOrder) *model.ChangeOrderModel {
	if data == nil {
		return nil
	}

	return &model.ChangeOrderModel{
		ID:           data.ID,
		ProjectID:    data.ProjectID,
		Number:       data.Number,
		Description:  data.Description,
		Amount:       data.Amount,
		Status:       string(data.Status),
		RequestedBy:  data.RequestedBy,
		RequestDate:  data.RequestDate,
		ApprovedBy:   data.ApprovedBy,
		ApprovalDate: data.ApprovalDate,
	}
}
