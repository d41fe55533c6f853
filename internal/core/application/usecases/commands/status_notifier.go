package commands

import (
	"context"
	"log/slog"

	"logitech/internal/core/domain/model/order"
	"logitech/internal/core/ports"
)

// notifyStatusChanged publishes the order's latest status to downstream
// consumers. Called only after a successful commit; publish failures are
// logged and swallowed so the already-committed command still succeeds.
func notifyStatusChanged(
	ctx context.Context,
	publisher ports.StatusPublisher,
	logger *slog.Logger,
	aggregate *order.Order,
) {
	if publisher == nil {
		return
	}

	history := aggregate.History()
	if len(history) == 0 {
		return
	}
	last := history[len(history)-1]

	event := ports.OrderStatusChangedEvent{
		OrderID:    aggregate.ID().String(),
		Status:     last.Status().String(),
		Actor:      last.Actor(),
		OccurredAt: last.At(),
	}

	if err := publisher.PublishStatusChanged(ctx, event); err != nil {
		logger.Warn("publish order status change",
			"order_id", event.OrderID,
			"status", event.Status,
			"error", err,
		)
	}
}
