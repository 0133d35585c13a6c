package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostEntry is one recorded expense against a project, tagged with a cost
// code. Amount is the authoritative value used in aggregation; Quantity and
// UnitCost are informational and are never reconciled against Amount.
type CostEntry struct {
	ID            uuid.UUID        // The Global Unique Identifier for the entry.
	ProjectID     uuid.UUID        // Foreign key to the owning project.
	CostCodeID    uuid.UUID        // Foreign key to the classifying cost code.
	Description   string           // What was spent.
	Amount        decimal.Decimal  // Authoritative expense amount, fixed-point currency (12,2).
	Quantity      *decimal.Decimal // Optional quantity, informational only.
	UnitCost      *decimal.Decimal // Optional unit cost, informational only.
	EntryDate     time.Time        // Date the cost was incurred; lists order by this, descending.
	AttachmentKey string           // Optional object-store key of a receipt or invoice.
	EnteredBy     uuid.UUID        // Identity that recorded the entry.
	CreatedAt     time.Time        // Timestamp of record creation.
	UpdatedAt     time.Time        // Timestamp of the last modification.
}
