package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectModel mirrors the 'projects' table. The has-many associations exist
// so migrations emit ON DELETE CASCADE foreign keys; the application cascade
// in the transaction manager is the primary mechanism and the constraint is
// the backstop.
type ProjectModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Number      string          `gorm:"type:varchar(50);unique;not null"`
	Description string          `gorm:"type:text"`
	Status      string          `gorm:"type:varchar(20);not null;default:'active'"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Budget      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StartDate   time.Time       `gorm:"not null"`
	EndDate     *time.Time
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	CostEntries  []CostEntryModel   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	ChangeOrders []ChangeOrderModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
