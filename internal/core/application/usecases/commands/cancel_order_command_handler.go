package commands

import (
	"context"
	"log/slog"
	"time"

	"logitech/internal/core/domain/model/order"
	"logitech/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation requests.
// The transition engine enforces that only pending or paid orders can be
// cancelled and that the actor is entitled to do so.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.StatusPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.StatusPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "CancelOrderCommandHandler"),
	}
}

// Handle processes the cancellation command.
// Loads the order, applies the cancelled transition on behalf of the actor,
// and persists under the version compare-and-set.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(order.Cancelled, cmd.Actor(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyStatusChanged(ctx, h.publisher, h.logger, aggregate)

	return nil
}
