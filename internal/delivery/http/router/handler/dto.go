// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"amptrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response DTOs keep the wire format stable and camelCased regardless of how
// the domain entities evolve. Money fields serialize as decimal strings.

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type loginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *userResponse `json:"user"`
}

type projectResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Number      string          `json:"number"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Type        string          `json:"type"`
	Budget      decimal.Decimal `json:"budget"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	CreatedBy   uuid.UUID       `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toProjectResponse(project *entity.Project) *projectResponse {
	return &projectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Number:      project.Number,
		Description: project.Description,
		Status:      string(project.Status),
		Type:        string(project.Type),
		Budget:      project.Budget,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func toProjectResponses(projects []*entity.Project) []*projectResponse {
	out := make([]*projectResponse, 0, len(projects))
	for _, project := range projects {
		out = append(out, toProjectResponse(project))
	}

	return out
}

type costCodeResponse struct {
	ID          uuid.UUID        `json:"id"`
	Code        string           `json:"code"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	Unit        string           `json:"unit,omitempty"`
	IsActive    bool             `json:"isActive"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func toCostCodeResponse(code *entity.CostCode) *costCodeResponse {
	return &costCodeResponse{
		ID:          code.ID,
		Code:        code.Code,
		Description: code.Description,
		Category:    string(code.Category),
		UnitPrice:   code.UnitPrice,
		Unit:        code.Unit,
		IsActive:    code.IsActive,
		CreatedAt:   code.CreatedAt,
		UpdatedAt:   code.UpdatedAt,
	}
}

func toCostCodeResponses(codes []*entity.CostCode) []*costCodeResponse {
	out := make([]*costCodeResponse, 0, len(codes))
	for _, code := range codes {
		out = append(out, toCostCodeResponse(code))
	}

	return out
}

type costEntryResponse struct {
	ID            uuid.UUID        `json:"id"`
	ProjectID     uuid.UUID        `json:"projectId"`
	CostCodeID    uuid.UUID        `json:"costCodeId"`
	Description   string           `json:"description"`
	Amount        decimal.Decimal  `json:"amount"`
	Quantity      *decimal.Decimal `json:"quantity,omitempty"`
	UnitCost      *decimal.Decimal `json:"unitCost,omitempty"`
	EntryDate     time.Time        `json:"entryDate"`
	AttachmentKey string           `json:"attachmentKey,omitempty"`
	EnteredBy     uuid.UUID        `json:"enteredBy"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

func toCostEntryResponse(entry *entity.CostEntry) *costEntryResponse {
	return &costEntryResponse{
		ID:            entry.ID,
		ProjectID:     entry.ProjectID,
		CostCodeID:    entry.CostCodeID,
		Description:   entry.Description,
		Amount:        entry.Amount,
		Quantity:      entry.Quantity,
		UnitCost:      entry.UnitCost,
		EntryDate:     entry.EntryDate,
		AttachmentKey: entry.AttachmentKey,
		EnteredBy:     entry.EnteredBy,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}
}

func toCostEntryResponses(entries []*entity.CostEntry) []*costEntryResponse {
	out := make([]*costEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toCostEntryResponse(entry))
	}

	return out
}

type changeOrderResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProjectID    uuid.UUID       `json:"projectId"`
	Number       string          `json:"number"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	RequestedBy  uuid.UUID       `json:"requestedBy"`
	RequestDate  time.Time       `json:"requestDate"`
	ApprovedBy   *uuid.UUID      `json:"approvedBy,omitempty"`
	ApprovalDate *time.Time      `json:"approvalDate,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func toChangeOrderResponse(order *entity.ChangeOrder) *changeOrderResponse {
	return &changeOrderResponse{
		ID:           order.ID,
		ProjectID:    order.ProjectID,
		Number:       order.Number,
		Description:  order.Description,
		Amount:       order.Amount,
		Status:       string(order.Status),
		RequestedBy:  order.RequestedBy,
		RequestDate:  order.RequestDate,
		ApprovedBy:   order.ApprovedBy,
		ApprovalDate: order.ApprovalDate,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

func toChangeOrderResponses(orders []*entity.ChangeOrder) []*changeOrderResponse {
	out := make([]*changeOrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toChangeOrderResponse(order))
	}

	return out
}
