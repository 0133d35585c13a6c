package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"amptrack/internal/domain/entity"
	mockUC "amptrack/internal/mocks/usecase"
	"amptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectHandler_GetCostSummary(t *testing.T) {
	uc := mockUC.NewMockProjectUsecase(t)
	handler := NewProjectHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	projectID := uuid.New()
	uc.EXPECT().
		GetCostSummary(mock.Anything, projectID).
		Return(&usecase.CostSummary{
			TotalCost: decimal.RequireFromString("7000.00"),
			CostByCategory: map[entity.CostCategory]decimal.Decimal{
				entity.CostCategoryLabor:     decimal.RequireFromString("4000.00"),
				entity.CostCategoryMaterials: decimal.RequireFromString("3000.00"),
			},
			BudgetVariance: decimal.RequireFromString("3000.00"),
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/projects/"+projectID.String()+"/cost-summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(projectID.String())

	err := handler.GetCostSummary(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Decimals travel as quoted strings so clients never see float drift.
	body := rec.Body.String()
	assert.Contains(t, body, `"totalCost":"7000"`)
	assert.Contains(t, body, `"budgetVariance":"3000"`)
	assert.Contains(t, body, `"labor":"4000"`)
	assert.Contains(t, body, `"materials":"3000"`)
}

func TestProjectHandler_GetCostSummary_InvalidID(t *testing.T) {
	uc := mockUC.NewMockProjectUsecase(t)
	handler := NewProjectHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/projects/not-a-uuid/cost-summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.GetCostSummary(c)

	assert.Error(t, err)
}
