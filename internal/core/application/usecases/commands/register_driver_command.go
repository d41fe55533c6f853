package commands

import (
	"errors"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/pkg/errs"
	"logitech/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrDriverNameIsRequired = errs.NewValueIsRequiredError("name")
)

// RegisterDriverCommand represents a request to register a new delivery
// driver for a service area. A non-positive capacity falls back to the
// driver aggregate's default.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	name        string
	serviceArea kernel.ServiceArea
	capacity    int

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver.
func NewRegisterDriverCommand(
	driverID kernel.UUID,
	name string,
	serviceArea kernel.ServiceArea,
	capacity int,
) (RegisterDriverCommand, error) {
	registerCommand := RegisterDriverCommand{
		capacity: capacity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setDriverID(driverID),
		registerCommand.setName(name),
		registerCommand.setServiceArea(serviceArea),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the identifier for the new driver.
func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// ServiceArea returns the area the driver covers.
func (c RegisterDriverCommand) ServiceArea() kernel.ServiceArea {
	return c.serviceArea
}

// Capacity returns the requested maximum number of active orders.
func (c RegisterDriverCommand) Capacity() int {
	return c.capacity
}

func (c *RegisterDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterDriverCommand) setServiceArea(serviceArea kernel.ServiceArea) error {
	if err := serviceArea.Validate(); err != nil {
		return err
	}

	c.serviceArea = serviceArea
	return nil
}
