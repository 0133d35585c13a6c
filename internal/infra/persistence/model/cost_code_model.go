package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostCodeModel mirrors the 'cost_codes' table. Rows are soft-deactivated
// via is_active; cost entries keep referencing them forever, so the FK on
// the association carries no cascade.
type CostCodeModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code        string           `gorm:"type:varchar(50);unique;not null"`
	Description string           `gorm:"type:text"`
	Category    string           `gorm:"type:varchar(20);not null;index"`
	UnitPrice   *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Unit        string           `gorm:"type:varchar(20)"`
	IsActive    bool             `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CostEntries []CostEntryModel `gorm:"foreignKey:CostCodeID"`
}

// TableName explicitly sets the table name for GORM.
func (CostCodeModel) TableName() string {
	return "cost_codes"
}
