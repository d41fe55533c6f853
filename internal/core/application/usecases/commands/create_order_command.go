package commands

import (
	"errors"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/pkg/errs"
	"logitech/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTransactionIDIsRequired = errs.NewValueIsRequiredError("transactionID")
)

// CreateOrderCommand represents a buyer's request to place a new order.
// Carries the external payment reference generated at checkout.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), buyerID, productID, "TRX-2024-0001", price, area,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	buyerID       kernel.UUID
	productID     kernel.UUID
	transactionID string
	price         kernel.Money
	deliveryArea  kernel.ServiceArea

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the payment reference, price and delivery area.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	buyerID kernel.UUID,
	productID kernel.UUID,
	transactionID string,
	price kernel.Money,
	deliveryArea kernel.ServiceArea,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setBuyerID(buyerID),
		orderCommand.setProductID(productID),
		orderCommand.setTransactionID(transactionID),
		orderCommand.setPrice(price),
		orderCommand.setDeliveryArea(deliveryArea),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the identifier of the buyer placing the order.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ProductID returns the identifier of the ordered product.
func (c CreateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// TransactionID returns the external payment reference.
func (c CreateOrderCommand) TransactionID() string {
	return c.transactionID
}

// Price returns the order price.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// DeliveryArea returns the service area the order must be delivered in.
func (c CreateOrderCommand) DeliveryArea() kernel.ServiceArea {
	return c.deliveryArea
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return ErrTransactionIDIsRequired
	}

	c.transactionID = transactionID
	return nil
}

func (c *CreateOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateOrderCommand) setDeliveryArea(deliveryArea kernel.ServiceArea) error {
	if err := deliveryArea.Validate(); err != nil {
		return err
	}

	c.deliveryArea = deliveryArea
	return nil
}
