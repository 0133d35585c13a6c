package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostCategory groups cost codes for aggregation reporting.
type CostCategory string

const (
	// CostCategoryLabor covers field and office labor.
	CostCategoryLabor CostCategory = "labor"
	// CostCategoryMaterials covers purchased materials.
	CostCategoryMaterials CostCategory = "materials"
	// CostCategoryEquipment covers owned and rented equipment.
	CostCategoryEquipment CostCategory = "equipment"
	// CostCategorySubcontractors covers subcontracted work.
	CostCategorySubcontractors CostCategory = "subcontractors"
)

// IsValid checks if the CostCategory is a valid value.
func (c CostCategory) IsValid() bool {
	switch c {
	case CostCategoryLabor, CostCategoryMaterials, CostCategoryEquipment, CostCategorySubcontractors:
		return true
	default:
		return false
	}
}

// CostCode is a reference row used to classify cost entries. Codes are
// soft-deactivated via IsActive rather than deleted, because historical
// entries keep referencing them.
type CostCode struct {
	ID          uuid.UUID        // The Global Unique Identifier for the cost code.
	Code        string           // Unique short code, e.g. "16100".
	Description string           // What work the code covers.
	Category    CostCategory     // Aggregation category (labor, materials, equipment, subcontractors).
	UnitPrice   *decimal.Decimal // Optional reference price per unit.
	Unit        string           // Optional unit of measure, e.g. "hour", "ft".
	IsActive    bool             // Soft-deactivation flag; inactive codes are hidden from pickers.
	CreatedAt   time.Time        // Timestamp of record creation.
	UpdatedAt   time.Time        // Timestamp of the last modification.
}
