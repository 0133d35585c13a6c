package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostEntryModel mirrors the 'cost_entries' table. Amount is the
// authoritative value for aggregation; quantity and unit_cost are stored as
// given and never reconciled.
type CostEntryModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProjectID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	CostCodeID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Description   string           `gorm:"type:text"`
	Amount        decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Quantity      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	UnitCost      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	EntryDate     time.Time        `gorm:"not null;index:idx_cost_entries_entry_date,sort:desc"`
	AttachmentKey string           `gorm:"type:varchar(512)"`
	EnteredBy     uuid.UUID        `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CostEntryModel) TableName() string {
	return "cost_entries"
}
