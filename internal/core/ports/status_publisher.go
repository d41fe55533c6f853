package ports

import (
	"context"
	"time"
)

// OrderStatusChangedEvent is the read-side notification emitted after a
// committed status transition. Status carries the wire token, Actor the
// rendered principal from the history entry.
type OrderStatusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StatusPublisher publishes committed status changes for downstream
// consumers (notifications, read models). Publishing is best-effort and
// happens after the transaction commits; failures are logged, never
// propagated into the command result.
type StatusPublisher interface {
	PublishStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
