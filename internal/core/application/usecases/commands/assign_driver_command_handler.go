package commands

import (
	"context"
	"log/slog"
	"time"

	"logitech/internal/core/domain/model/order"
	"logitech/internal/core/domain/services"
	"logitech/internal/core/ports"
)

// AssignDriverCommandHandler binds available drivers to paid orders.
// Driver selection is delegated to the domain assignment service; binding
// the driver, moving the order to in_transit, and reserving the driver's
// capacity slot all commit in a single transaction.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory, publisher, logger)
//	if err := handler.Handle(ctx, NewAssignNextOrderCommand()); err != nil {
//	    // services.ErrNoDriverAvailable: order stays paid, retried later
//	}
type AssignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
	assignment services.DriverAssignment
	publisher  ports.StatusPublisher
	logger     *slog.Logger
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory AssignmentUoWFactory,
	publisher ports.StatusPublisher,
	logger *slog.Logger,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		assignment: services.NewDriverAssignment(),
		publisher:  publisher,
		logger:     logger.With("component", "AssignDriverCommandHandler"),
	}
}

// Handle processes the assignment command.
// When no eligible driver exists the order is left paid and
// services.ErrNoDriverAvailable is returned for the caller to retry.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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
	aggregate, err := h.resolveOrder(ctx, orderRepo, cmd)
	if err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()
	candidates, err := driverRepo.GetAvailableByServiceArea(ctx, aggregate.DeliveryArea())
	if err != nil {
		return err
	}

	assigned, err := h.assignment.Assign(aggregate, candidates, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, assigned); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("driver assigned",
		"order_id", aggregate.ID().String(),
		"driver_id", assigned.ID().String(),
	)

	notifyStatusChanged(ctx, h.publisher, h.logger, aggregate)

	return nil
}

func (h *AssignDriverCommandHandler) resolveOrder(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	cmd AssignDriverCommand,
) (*order.Order, error) {
	if orderID := cmd.OrderID(); orderID != nil {
		return orderRepo.Get(ctx, *orderID)
	}

	return orderRepo.GetFirstInPaidStatusUnassigned(ctx)
}
