package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChangeOrderModel mirrors the 'change_orders' table. approved_by and
// approval_date are written together by the approval transition and are null
// in every other state.
type ChangeOrderModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProjectID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Number       string          `gorm:"type:varchar(50);not null"`
	Description  string          `gorm:"type:text"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	RequestedBy  uuid.UUID       `gorm:"type:uuid;not null"`
	ApprovedBy   *uuid.UUID      `gorm:"type:uuid"`
	RequestDate  time.Time       `gorm:"not null;index:idx_change_orders_request_date,sort:desc"`
	ApprovalDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChangeOrderModel) TableName() string {
	return "change_orders"
}
