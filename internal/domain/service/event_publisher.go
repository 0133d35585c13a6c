package service

import (
	"context"
)

// Ledger event types published to downstream consumers (reporting jobs,
// client refresh pushes).
const (
	EventCostEntryRecorded  = "cost_entry.recorded"
	EventChangeOrderDecided = "change_order.decided"
)

// LedgerEvent represents a committed change to a project's cost ledger.
// Amount travels as a decimal string to preserve fixed-point precision.
type LedgerEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Type       string `json:"type"`                 // EventCostEntryRecorded or EventChangeOrderDecided
	ProjectID  string `json:"project_id"`
	EntityID   string `json:"entity_id"` // Cost entry or change order id
	Status     string `json:"status,omitempty"`
	Amount     string `json:"amount"`
	ActorID    string `json:"actor_id"`
	OccurredAt string `json:"occurred_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLedgerEvent publishes a ledger event for async processing.
	// Events are emitted after the owning transaction commits; publish
	// failures must never fail the originating request.
	PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
