package handler

import (
	"log/slog"
	"net/http"
	"time"

	"amptrack/internal/delivery/http/response"
	"amptrack/internal/domain/entity"
	"amptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProjectHandler holds dependencies for project-related handlers.
type ProjectHandler struct {
	uc     usecase.ProjectUsecase
	logger *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		uc:     uc,
		logger: logger,
	}
}

type createProjectRequest struct {
	Name        string          `json:"name" validate:"required"`
	Number      string          `json:"number" validate:"required"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Type        string          `json:"type" validate:"required"`
	Budget      decimal.Decimal `json:"budget" validate:"required"`
	StartDate   time.Time       `json:"startDate" validate:"required"`
	EndDate     *time.Time      `json:"endDate"`
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.uc.Create(c.Request().Context(), actor, usecase.CreateProjectInput{
		Name:        req.Name,
		Number:      req.Number,
		Description: req.Description,
		Status:      entity.ProjectStatus(req.Status),
		Type:        entity.ProjectType(req.Type),
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProjectResponse(project), "Project created successfully")
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProjectResponses(projects), "")
}

// Get handles GET /api/projects/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	project, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProjectResponse(project), "")
}

type updateProjectRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	Type        *string          `json:"type"`
	Budget      *decimal.Decimal `json:"budget"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
}

// Update handles PUT /api/projects/:id. Absent fields are left untouched.
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}

	patch := usecase.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.Status != nil {
		status := entity.ProjectStatus(*req.Status)
		patch.Status = &status
	}
	if req.Type != nil {
		projectType := entity.ProjectType(*req.Type)
		patch.Type = &projectType
	}

	project, err := h.uc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProjectResponse(project), "Project updated successfully")
}

// Delete handles DELETE /api/projects/:id. Deleting a project removes its
// cost entries and change orders in the same transaction.
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCostSummary handles GET /api/projects/:id/cost-summary.
func (h *ProjectHandler) GetCostSummary(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	summary, err := h.uc.GetCostSummary(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}
