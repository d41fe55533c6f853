package commands

import (
	"context"
	"log/slog"
	"time"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/core/domain/model/order"
	"logitech/internal/core/ports"
)

// CompleteDeliveryCommandHandler handles delivery confirmations.
// Moves the order to delivered and frees the driver's capacity slot in the
// same transaction, so a completed delivery immediately makes the driver
// eligible for the next assignment.
type CompleteDeliveryCommandHandler struct {
	uowFactory AssignmentUoWFactory
	publisher  ports.StatusPublisher
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory AssignmentUoWFactory,
	publisher ports.StatusPublisher,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "CompleteDeliveryCommandHandler"),
	}
}

// Handle processes the delivery confirmation.
// The transition engine rejects the request unless the order is in transit
// and the confirming driver is the one bound to it.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := kernel.NewDriverActor(cmd.DriverID())
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(order.Delivered, actor, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()
	courier, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = courier.ReleaseOrder(); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, courier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyStatusChanged(ctx, h.publisher, h.logger, aggregate)

	return nil
}
