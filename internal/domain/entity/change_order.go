package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChangeOrderStatus represents the approval state of a change order.
// The lifecycle is pending -> approved or pending -> rejected; both
// outcomes are terminal.
type ChangeOrderStatus string

const (
	// ChangeOrderStatusPending is the initial state of every change order.
	ChangeOrderStatusPending ChangeOrderStatus = "pending"
	// ChangeOrderStatusApproved is a terminal state. Entering it stamps
	// ApprovedBy and ApprovalDate.
	ChangeOrderStatusApproved ChangeOrderStatus = "approved"
	// ChangeOrderStatusRejected is a terminal state. No rejection metadata
	// is recorded beyond the status itself.
	ChangeOrderStatusRejected ChangeOrderStatus = "rejected"
)

// IsValid checks if the ChangeOrderStatus is a valid value.
func (s ChangeOrderStatus) IsValid() bool {
	switch s {
	case ChangeOrderStatusPending, ChangeOrderStatusApproved, ChangeOrderStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave this state.
func (s ChangeOrderStatus) IsTerminal() bool {
	return s == ChangeOrderStatusApproved || s == ChangeOrderStatusRejected
}

// IsDecision reports whether the status is a valid decision target,
// i.e. a state a pending change order may transition into.
func (s ChangeOrderStatus) IsDecision() bool {
	return s == ChangeOrderStatusApproved || s == ChangeOrderStatusRejected
}

// ChangeOrder is a requested budget/scope modification requiring approval.
// ApprovedBy and ApprovalDate are set together, only as a side effect of a
// transition into "approved", and never otherwise.
type ChangeOrder struct {
	ID           uuid.UUID         // The Global Unique Identifier for the change order.
	ProjectID    uuid.UUID         // Foreign key to the owning project.
	Number       string            // Change-order number assigned by the firm.
	Description  string            // What is changing and why.
	Amount       decimal.Decimal   // Requested budget delta, fixed-point currency (12,2).
	Status       ChangeOrderStatus // Approval state (pending, approved, rejected).
	RequestedBy  uuid.UUID         // Identity that filed the request; always the authenticated caller.
	ApprovedBy   *uuid.UUID        // Identity that approved; nil unless Status is approved.
	RequestDate  time.Time         // When the request was filed; defaults to creation time.
	ApprovalDate *time.Time        // When approval happened; nil unless Status is approved.
	CreatedAt    time.Time         // Timestamp of record creation.
	UpdatedAt    time.Time         // Timestamp of the last modification.
}
