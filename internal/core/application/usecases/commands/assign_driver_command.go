package commands

import (
	"errors"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand or NewAssignNextOrderCommand constructor",
)

// AssignDriverCommand represents a request to bind a driver to a paid order.
// It either targets a specific order or, in sweep mode, the oldest paid
// order without a driver.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command targeting a specific order.
func NewAssignDriverCommand(orderID kernel.UUID) (AssignDriverCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewAssignNextOrderCommand creates a sweep command that picks the oldest
// paid order still waiting for a driver.
func NewAssignNextOrderCommand() AssignDriverCommand {
	return AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through a constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the targeted order id, or nil in sweep mode.
func (c AssignDriverCommand) OrderID() *kernel.UUID {
	if c.orderID == nil {
		return nil
	}

	orderID := *c.orderID
	return &orderID
}
