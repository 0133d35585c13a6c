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

// changeOrderServiceFixtures holds all test dependencies for change order service tests.
type changeOrderServiceFixtures struct {
	service         usecase.ChangeOrderUsecase
	changeOrderRepo *mockRepo.MockChangeOrderRepository
	projectRepo     *mockRepo.MockProjectRepository
	publisher       *mockSvc.MockEventPublisher
}

func createTestChangeOrderService(t *testing.T) changeOrderServiceFixtures {
	changeOrderRepo := mockRepo.NewMockChangeOrderRepository(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewChangeOrderService(ChangeOrderServiceParams{
		ChangeOrderRepo: changeOrderRepo,
		ProjectRepo:     projectRepo,
		Publisher:       publisher,
		Logger:          logger,
	})

	return changeOrderServiceFixtures{
		service:         service,
		changeOrderRepo: changeOrderRepo,
		projectRepo:     projectRepo,
		publisher:       publisher,
	}
}

func TestChangeOrderService_Create_StartsPending(t *testing.T) {
	fx := createTestChangeOrderService(t)

	ctx := context.Background()
	actorID := uuid.New()
	projectID := uuid.New()
	input := usecase.CreateChangeOrderInput{
		ProjectID:   projectID,
		Number:      "CO-007",
		Description: "Additional panel feeds",
		Amount:      decimal.RequireFromString("4500.00"),
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(&entity.Project{ID: projectID}, nil)

	fx.changeOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ChangeOrder")).
		Run(func(ctx context.Context, order *entity.ChangeOrder) {
			order.ID = uuid.New()
		}).
		Return(nil)

	order, err := fx.service.Create(ctx, actorID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ChangeOrderStatusPending, order.Status)
	assert.Equal(t, actorID, order.RequestedBy)
	assert.Nil(t, order.ApprovedBy)
	assert.Nil(t, order.ApprovalDate)
	assert.False(t, order.RequestDate.IsZero())
}

func TestChangeOrderService_Create_ProjectNotFound(t *testing.T) {
	fx := createTestChangeOrderService(t)

	ctx := context.Background()
	projectID := uuid.New()

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(nil, repository.ErrProjectNotFound)

	order, err := fx.service.Create(ctx, uuid.New(), usecase.CreateChangeOrderInput{
		ProjectID: projectID,
		Number:    "CO-008",
		Amount:    decimal.RequireFromString("100.00"),
	})

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
}

func TestChangeOrderService_Decide_ApproveStampsActorAndDate(t *testing.T) {
	fx := createTestChangeOrderService(t)

	ctx := context.Background()
	actorID := uuid.New()
	id := uuid.New()
	projectID := uuid.New()

	fx.changeOrderRepo.EXPECT().
		Decide(ctx, id, entity.ChangeOrderStatusApproved,
			mock.AnythingOfType("*uuid.UUID"), mock.AnythingOfType("*time.Time")).
		Run(func(ctx context.Context, id uuid.UUID, status entity.ChangeOrderStatus, approvedBy *uuid.UUID, approvalDate *time.Time) {
			require.NotNil(t, approvedBy)
			require.NotNil(t, approvalDate)
			assert.Equal(t, actorID, *approvedBy)
		}).
		Return(nil)

	now := time.Now()
	decided := &entity.ChangeOrder{
		ID:           id,
		ProjectID:    projectID,
		Status:       entity.ChangeOrderStatusApproved,
		Amount:       decimal.RequireFromString("4500.00"),
		RequestedBy:  actorID,
		ApprovedBy:   &actorID,
		ApprovalDate: &now,
	}
	fx.changeOrderRepo.EXPECT().FindByID(ctx, id).Return(decided, nil)

	fx.publisher.EXPECT().
		PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Return(nil)

	order, err := fx.service.Decide(ctx, actorID, id, entity.ChangeOrderStatusApproved)

	require.NoError(t, err)
	assert.Equal(t, entity.ChangeOrderStatusApproved, order.Status)
	require.NotNil(t, order.ApprovedBy)
	assert.Equal(t, actorID, *order.ApprovedBy)
	assert.NotNil(t, order.ApprovalDate)
}

func TestChangeOrderService_Decide_RejectStampsNothing(t *testing.T) {
	fx := createTestChangeOrderService(t)

	ctx := context.Background()
	actorID := uuid.New()
	id := uuid.New()

	fx.changeOrderRepo.EXPECT().
		Decide(ctx, id, entity.ChangeOrderStatusRejected, (*uuid.UUID)(nil), (*time.Time)(nil)).
		Return(nil)

	rejected := &entity.ChangeOrder{
		ID:     id,
		Status: entity.ChangeOrderStatusRejected,
		Amount: decimal.RequireFromString("900.00"),
	}
	fx.changeOrderRepo.EXPECT().FindByID(ctx, id).Return(rejected, nil)

	fx.publisher.EXPECT().
		PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Return(nil)

	order, err := fx.service.Decide(ctx, actorID, id, entity.ChangeOrderStatusRejected)

	require.NoError(t, err)
	assert.Equal(t, entity.ChangeOrderStatusRejected, order.Status)
	assert.Nil(t, order.ApprovedBy)
	assert.Nil(t, order.ApprovalDate)
}

func TestChangeOrderService_Decide_AlreadyDecided(t *testing.T) {
	fx := createTestChangeOrderService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.changeOrderRepo.EXPECT().
		Decide(ctx, id, entity.ChangeOrderStatusApproved,
			mock.AnythingOfType("*uuid.UUID"), mock.AnythingOfType("*time.Time")).
		Return(repository.ErrChangeOrderDecided)

	order, err := fx.service.Decide(ctx, uuid.New(), id, entity.ChangeOrderStatusApproved)

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrChangeOrderDecided))
}

func TestChangeOrderService_Decide_PendingIsNotADecision(t *testing.T) {
	fx := createTestChangeOrderService(t)

	ctx := context.Background()

	order, err := fx.service.Decide(ctx, uuid.New(), uuid.New(), entity.ChangeOrderStatusPending)

	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestChangeOrderService_Decide_PublishFailureDoesNotFailRequest(t *testing.T) {
	fx := createTestChangeOrderService(t)

	ctx := context.Background()
	actorID := uuid.New()
	id := uuid.New()

	fx.changeOrderRepo.EXPECT().
		Decide(ctx, id, entity.ChangeOrderStatusRejected, (*uuid.UUID)(nil), (*time.Time)(nil)).
		Return(nil)
	fx.changeOrderRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.ChangeOrder{ID: id, Status: entity.ChangeOrderStatusRejected}, nil)

	fx.publisher.EXPECT().
		PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Return(errors.New("broker unavailable"))

	order, err := fx.service.Decide(ctx, actorID, id, entity.ChangeOrderStatusRejected)

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestChangeOrderService_Update_PatchesNonStatusFields(t *testing.T) {
	fx := createTestChangeOrderService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.ChangeOrder{
		ID:          id,
		Number:      "CO-003",
		Description: "Rough-in rework",
		Amount:      decimal.RequireFromString("1200.00"),
		Status:      entity.ChangeOrderStatusPending,
	}

	fx.changeOrderRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.changeOrderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ChangeOrder")).
		Return(nil)

	newAmount := decimal.RequireFromString("1350.00")
	order, err := fx.service.Update(ctx, id, usecase.ChangeOrderPatch{Amount: &newAmount})

	require.NoError(t, err)
	assert.True(t, order.Amount.Equal(newAmount))
	assert.Equal(t, "Rough-in rework", order.Description)
	assert.Equal(t, entity.ChangeOrderStatusPending, order.Status)
}

func TestChangeOrderService_List_ForwardsProjectFilter(t *testing.T) {
	fx := createTestChangeOrderService(t)

	ctx := context.Background()
	projectID := uuid.New()

	fx.changeOrderRepo.EXPECT().
		Find(ctx, &projectID).
		Return([]*entity.ChangeOrder{{ID: uuid.New(), ProjectID: projectID}}, nil)

	orders, err := fx.service.List(ctx, &projectID)

	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
