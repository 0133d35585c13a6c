package handler

import (
	"log/slog"
	"net/http"
	"time"

	"amptrack/internal/delivery/http/response"
	"amptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CostEntryHandler holds dependencies for cost entry handlers.
type CostEntryHandler struct {
	uc     usecase.CostEntryUsecase
	logger *slog.Logger
}

// NewCostEntryHandler is the constructor for CostEntryHandler, injected by Fx.
func NewCostEntryHandler(uc usecase.CostEntryUsecase, logger *slog.Logger) *CostEntryHandler {
	return &CostEntryHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCostEntryRequest struct {
	ProjectID     uuid.UUID        `json:"projectId" validate:"required"`
	CostCodeID    uuid.UUID        `json:"costCodeId" validate:"required"`
	Description   string           `json:"description"`
	Amount        decimal.Decimal  `json:"amount" validate:"required"`
	Quantity      *decimal.Decimal `json:"quantity"`
	UnitCost      *decimal.Decimal `json:"unitCost"`
	EntryDate     time.Time        `json:"entryDate"`
	AttachmentKey string           `json:"attachmentKey"`
}

// Create handles POST /api/cost-entries. An omitted entryDate defaults to
// the time of recording.
func (h *CostEntryHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createCostEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cost entry input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := h.uc.Create(c.Request().Context(), actor, usecase.CreateCostEntryInput{
		ProjectID:     req.ProjectID,
		CostCodeID:    req.CostCodeID,
		Description:   req.Description,
		Amount:        req.Amount,
		Quantity:      req.Quantity,
		UnitCost:      req.UnitCost,
		EntryDate:     req.EntryDate,
		AttachmentKey: req.AttachmentKey,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCostEntryResponse(entry), "Cost entry recorded successfully")
}

// List handles GET /api/cost-entries. The optional "projectId" query
// parameter restricts results to one project; entries come back newest
// entry date first.
func (h *CostEntryHandler) List(c echo.Context) error {
	var projectID *uuid.UUID
	if raw := c.QueryParam("projectId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "projectId must be a UUID")
		}
		projectID = &id
	}

	entries, err := h.uc.List(c.Request().Context(), projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCostEntryResponses(entries), "")
}

type updateCostEntryRequest struct {
	CostCodeID    *uuid.UUID       `json:"costCodeId"`
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Quantity      *decimal.Decimal `json:"quantity"`
	UnitCost      *decimal.Decimal `json:"unitCost"`
	EntryDate     *time.Time       `json:"entryDate"`
	AttachmentKey *string          `json:"attachmentKey"`
}

// Update handles PUT /api/cost-entries/:id.
func (h *CostEntryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCostEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cost entry input")
	}

	entry, err := h.uc.Update(c.Request().Context(), id, usecase.CostEntryPatch{
		CostCodeID:    req.CostCodeID,
		Description:   req.Description,
		Amount:        req.Amount,
		Quantity:      req.Quantity,
		UnitCost:      req.UnitCost,
		EntryDate:     req.EntryDate,
		AttachmentKey: req.AttachmentKey,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCostEntryResponse(entry), "Cost entry updated successfully")
}

// Delete handles DELETE /api/cost-entries/:id.
func (h *CostEntryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
