package commands

import (
	"context"

	"github.com/google/uuid"
)

// Notifier is the out-of-scope notification dispatcher. Calls are
// fire-and-forget: implementations log failures and never return them, so a
// notification problem cannot abort the owning transaction.
type Notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, event string, payload map[string]any)
}

const (
	EventBookingCreated  = "booking_created"
	EventStatusChanged   = "status_changed"
	EventPaymentsPlanned = "payments_planned"
	EventEntityRemoved   = "entity_removed"
)
