package handler

import (
	"log/slog"
	"net/http"

	"amptrack/internal/delivery/http/response"
	"amptrack/internal/domain/entity"
	"amptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ChangeOrderHandler holds dependencies for change order handlers.
type ChangeOrderHandler struct {
	uc     usecase.ChangeOrderUsecase
	logger *slog.Logger
}

// NewChangeOrderHandler is the constructor for ChangeOrderHandler, injected by Fx.
func NewChangeOrderHandler(uc usecase.ChangeOrderUsecase, logger *slog.Logger) *ChangeOrderHandler {
	return &ChangeOrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type createChangeOrderRequest struct {
	ProjectID   uuid.UUID       `json:"projectId" validate:"required"`
	Number      string          `json:"number" validate:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

// Create handles POST /api/change-orders. The order always starts pending,
// requested by the authenticated caller; any status or requester in the
// payload is ignored.
func (h *ChangeOrderHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createChangeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.Create(c.Request().Context(), actor, usecase.CreateChangeOrderInput{
		ProjectID:   req.ProjectID,
		Number:      req.Number,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toChangeOrderResponse(order), "Change order created successfully")
}

// List handles GET /api/change-orders. The optional "projectId" query
// parameter restricts results to one project; orders come back newest
// request date first.
func (h *ChangeOrderHandler) List(c echo.Context) error {
	var projectID *uuid.UUID
	if raw := c.QueryParam("projectId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "projectId must be a UUID")
		}
		projectID = &id
	}

	orders, err := h.uc.List(c.Request().Context(), projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toChangeOrderResponses(orders), "")
}

type updateChangeOrderRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Status      *string          `json:"status"`
}

// Update handles PUT /api/change-orders/:id. A payload carrying a status
// drives the approval workflow: "approved" or "rejected" transitions the
// pending order terminally, stamping the approver on approval. Without a
// status the payload patches description and amount only.
func (h *ChangeOrderHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateChangeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change order input")
	}

	if req.Status != nil {
		actor, err := actorID(c)
		if err != nil {
			return err
		}

		order, err := h.uc.Decide(c.Request().Context(), actor, id, entity.ChangeOrderStatus(*req.Status))
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toChangeOrderResponse(order), "Change order decided successfully")
	}

	order, err := h.uc.Update(c.Request().Context(), id, usecase.ChangeOrderPatch{
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toChangeOrderResponse(order), "Change order updated successfully")
}
