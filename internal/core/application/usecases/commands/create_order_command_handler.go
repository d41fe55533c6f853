package commands

import (
	"context"
	"log/slog"
	"time"

	"logitech/internal/core/domain/model/order"
	"logitech/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// New orders start in pending status and wait for payment confirmation.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	cmd, _ := NewCreateOrderCommand(orderID, buyerID, productID, txID, price, area)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and awaiting the payment webhook
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.StatusPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The publisher may be nil when no downstream consumers are wired.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.StatusPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "CreateOrderCommandHandler"),
	}
}

// Handle processes the order placement command.
// Persists a pending order with its initial history entry, then notifies
// downstream consumers of the new status.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.BuyerID(),
		cmd.ProductID(),
		cmd.TransactionID(),
		cmd.Price(),
		cmd.DeliveryArea(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyStatusChanged(ctx, h.publisher, h.logger, aggregate)

	return nil
}
