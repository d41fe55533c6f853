package order

import (
	"errors"
	"time"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/pkg/errs"
	"logitech/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrUnauthorizedActor is returned when the acting principal lacks the
	// role (or identity match) required for the requested transition.
	ErrUnauthorizedActor = errors.New("actor is not permitted to perform this transition")

	// ErrDriverAlreadyAssigned is returned when binding a driver to an order
	// that already has one. A bound driver is immutable for the order's lifetime.
	ErrDriverAlreadyAssigned = errors.New("order already has a driver assigned")

	// ErrDriverIsNotAssigned is returned when an order would enter in_transit
	// without a driver bound.
	ErrDriverIsNotAssigned = errors.New("order has no driver assigned")

	// ErrOrderIsNotAssignable is returned when driver assignment is attempted
	// on an order that is not paid or already carries a driver.
	ErrOrderIsNotAssignable = errors.New("order is not eligible for driver assignment")
)

// Order is the aggregate root tracking a single buyer-to-seller transaction
// through fulfillment. It owns the status state machine: every status change
// goes through TransitionTo (or AssignDriver, which wraps it), which validates
// the edge, checks the actor's capability, and appends to the audit history.
//
// Invariants:
//   - statuses only ever move along the graph in status.go
//   - driverID is nil until assignment and immutable once set
//   - transactionID is set at creation and immutable
//   - statusHistory only grows; entry timestamps are non-decreasing
//   - orders are never deleted; terminal orders remain for audit
type Order struct {
	id            kernel.UUID
	buyerID       kernel.UUID
	productID     kernel.UUID
	transactionID string
	price         kernel.Money
	deliveryArea  kernel.ServiceArea
	status        Status
	driverID      *kernel.UUID
	version       int
	createdAt     time.Time
	updatedAt     time.Time
	history       []HistoryEntry
	guard         guard.ConstructorGuard
}

// NewOrder creates a pending order for a buyer. The transaction id is the
// external payment reference generated at checkout; it maps 1:1 to the order
// and never changes. The initial history entry records the buyer as the actor
// that put the order into pending.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	productID kernel.UUID,
	transactionID string,
	price kernel.Money,
	deliveryArea kernel.ServiceArea,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:  Pending,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setProductID(productID),
		o.setTransactionID(transactionID),
		o.setPrice(price),
		o.setDeliveryArea(deliveryArea),
	); err != nil {
		return nil, err
	}

	buyer, err := kernel.NewBuyerActor(buyerID)
	if err != nil {
		return nil, err
	}

	o.createdAt = now
	o.updatedAt = now
	o.history = []HistoryEntry{NewHistoryEntry(Pending, now, buyer.String())}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence, including its
// full status history. It validates the same invariants NewOrder enforces plus
// the status/driver consistency rules, so a corrupted row cannot produce a
// usable aggregate.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	productID kernel.UUID,
	transactionID string,
	price kernel.Money,
	deliveryArea kernel.ServiceArea,
	status Status,
	driverID *kernel.UUID,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
	history []HistoryEntry,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setProductID(productID),
		o.setTransactionID(transactionID),
		o.setPrice(price),
		o.setDeliveryArea(deliveryArea),
		o.setStatus(status),
		o.setDriverID(driverID),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}

	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.history = append([]HistoryEntry(nil), history...)

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the id of the buyer who created the order.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// ProductID returns the id of the purchased product.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// TransactionID returns the external payment reference.
func (o *Order) TransactionID() string {
	return o.transactionID
}

// Price returns the order amount.
func (o *Order) Price() kernel.Money {
	return o.price
}

// DeliveryArea returns the zone the order is delivered to.
func (o *Order) DeliveryArea() kernel.ServiceArea {
	return o.deliveryArea
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DriverID returns the assigned driver's id, or nil before assignment.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Version returns the optimistic-concurrency version the aggregate was
// loaded with. Persistence compares-and-swaps on it: a concurrent writer
// that committed first makes this aggregate's update fail with a version
// conflict instead of silently overwriting.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// History returns a copy of the append-only status history, oldest first.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// TransitionTo validates and applies a status change. This is the single
// mutation entry point for order status: it checks the edge exists in the
// status graph, checks the actor's role permits the transition, then applies
// the change and appends a history entry.
//
// Errors:
//   - ErrInvalidTransition: illegal edge or terminal-state mutation attempt
//   - ErrUnauthorizedActor: the actor's role or identity does not permit it
//   - ErrDriverIsNotAssigned: in_transit requested with no driver bound
func (o *Order) TransitionTo(target Status, actor kernel.Actor, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidateTransitionTo(target); err != nil {
		return err
	}

	if err := o.authorize(actor, target); err != nil {
		return err
	}

	if target == InTransit && o.driverID == nil {
		return ErrDriverIsNotAssigned
	}

	o.applyStatus(target, actor, now)
	return nil
}

// AssignDriver binds a driver to a paid order and moves it to in_transit as a
// single unit: if the transition fails for any reason the binding is not kept,
// so a driver is never bound to an order outside in_transit (and vice versa).
func (o *Order) AssignDriver(driverID kernel.UUID, actor kernel.Actor, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return ErrDriverAlreadyAssigned
	}

	o.driverID = &driverID
	if err := o.TransitionTo(InTransit, actor, now); err != nil {
		o.driverID = nil
		return err
	}

	return nil
}

// ValidateAssignable checks the preconditions for driver assignment:
// the order is paid and carries no driver yet.
func (o *Order) ValidateAssignable() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != Paid || o.driverID != nil {
		return ErrOrderIsNotAssignable
	}
	return nil
}

// authorize checks the actor's capability for the requested transition:
//   - pending→paid: payment system only
//   - paid→in_transit: assignment service only
//   - in_transit→delivered: the assigned driver only
//   - →cancelled: the order's own buyer, an admin, or (from pending only)
//     the payment system reporting a failed or expired payment
func (o *Order) authorize(actor kernel.Actor, target Status) error {
	switch target {
	case Paid:
		if actor.Role() == kernel.RolePaymentSystem {
			return nil
		}
	case InTransit:
		if actor.Role() == kernel.RoleAssignmentService {
			return nil
		}
	case Delivered:
		if actor.Role() == kernel.RoleDriver && o.driverID != nil && actor.ID().IsEqual(*o.driverID) {
			return nil
		}
	case Cancelled:
		switch actor.Role() {
		case kernel.RoleBuyer:
			if actor.ID().IsEqual(o.buyerID) {
				return nil
			}
		case kernel.RoleAdmin:
			return nil
		case kernel.RolePaymentSystem:
			if o.status == Pending {
				return nil
			}
		case kernel.RoleDriver, kernel.RoleAssignmentService:
		}
	case Pending:
	}

	return ErrUnauthorizedActor
}

// applyStatus mutates status, history and updatedAt together. History
// timestamps must be non-decreasing, so a clock reading earlier than the
// last entry is clamped to it.
func (o *Order) applyStatus(target Status, actor kernel.Actor, now time.Time) {
	if last := len(o.history) - 1; last >= 0 && now.Before(o.history[last].At()) {
		now = o.history[last].At()
	}

	o.status = target
	o.history = append(o.history, NewHistoryEntry(target, now, actor.String()))
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	o.productID = productID
	return nil
}

func (o *Order) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transaction id")
	}
	o.transactionID = transactionID
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}

func (o *Order) setDeliveryArea(deliveryArea kernel.ServiceArea) error {
	if err := deliveryArea.Validate(); err != nil {
		return err
	}
	o.deliveryArea = deliveryArea
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	o.driverID = driverID
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("order version",
			errors.New("version must be at least 1"))
	}
	o.version = version
	return nil
}
