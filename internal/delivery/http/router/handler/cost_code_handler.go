package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"amptrack/internal/delivery/http/response"
	"amptrack/internal/domain/entity"
	"amptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CostCodeHandler holds dependencies for cost code reference data handlers.
type CostCodeHandler struct {
	uc     usecase.CostCodeUsecase
	logger *slog.Logger
}

// NewCostCodeHandler is the constructor for CostCodeHandler, injected by Fx.
func NewCostCodeHandler(uc usecase.CostCodeUsecase, logger *slog.Logger) *CostCodeHandler {
	return &CostCodeHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCostCodeRequest struct {
	Code        string           `json:"code" validate:"required"`
	Description string           `json:"description"`
	Category    string           `json:"category" validate:"required"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	Unit        string           `json:"unit"`
}

// Create handles POST /api/cost-codes.
func (h *CostCodeHandler) Create(c echo.Context) error {
	var req createCostCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cost code input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	code, err := h.uc.Create(c.Request().Context(), usecase.CreateCostCodeInput{
		Code:        req.Code,
		Description: req.Description,
		Category:    entity.CostCategory(req.Category),
		UnitPrice:   req.UnitPrice,
		Unit:        req.Unit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCostCodeResponse(code), "Cost code created successfully")
}

// List handles GET /api/cost-codes. The optional "category" query parameter
// narrows to one category; "includeInactive=true" also returns deactivated
// codes.
func (h *CostCodeHandler) List(c echo.Context) error {
	input := usecase.ListCostCodesInput{}

	if raw := c.QueryParam("category"); raw != "" {
		category := entity.CostCategory(raw)
		input.Category = &category
	}
	if raw := c.QueryParam("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "includeInactive must be a boolean")
		}
		input.IncludeInactive = includeInactive
	}

	codes, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCostCodeResponses(codes), "")
}

type updateCostCodeRequest struct {
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	Unit        *string          `json:"unit"`
	IsActive    *bool            `json:"isActive"`
}

// Update handles PUT /api/cost-codes/:id. Setting isActive to false
// deactivates the code without touching historical entries.
func (h *CostCodeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCostCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cost code input")
	}

	code, err := h.uc.Update(c.Request().Context(), id, usecase.CostCodePatch{
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Unit:        req.Unit,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCostCodeResponse(code), "Cost code updated successfully")
}
