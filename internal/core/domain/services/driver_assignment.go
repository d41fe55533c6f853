package services

import (
	"errors"
	"time"

	"logitech/internal/core/domain/model/driver"
	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/core/domain/model/order"
)

// ErrNoDriverAvailable is returned when no candidate driver can take the
// order: none serves the delivery area with a free capacity slot. The order
// stays paid; callers retry on the next sweep or on driver registration.
var ErrNoDriverAvailable = errors.New("no driver available")

// DriverAssignment is the domain service that matches a paid order with the
// best available driver.
//
// Selection policy:
//   - the driver's service area must match the order's delivery area
//   - the driver's active-order count must be below their capacity
//   - among eligible drivers, pick the one with the fewest active orders
//   - ties break by earliest registration, then lowest id, for determinism
type DriverAssignment struct{}

// NewDriverAssignment creates a DriverAssignment service.
func NewDriverAssignment() DriverAssignment {
	return DriverAssignment{}
}

// Assign selects the best driver for the order, reserves a capacity slot on
// the driver, and moves the order to in_transit with the driver bound. Driver
// slot, binding and transition succeed or fail together: on any error the
// order keeps no driver and no slot stays reserved.
func (s DriverAssignment) Assign(o *order.Order, drivers []*driver.Driver, now time.Time) (*driver.Driver, error) {
	if err := o.ValidateAssignable(); err != nil {
		return nil, err
	}

	best, err := s.selectDriver(o, drivers)
	if err != nil {
		return nil, err
	}

	if err = best.TakeOrder(); err != nil {
		return nil, err
	}

	if err = o.AssignDriver(best.ID(), kernel.AssignmentServiceActor(), now); err != nil {
		_ = best.ReleaseOrder()
		return nil, err
	}

	return best, nil
}

// selectDriver applies the selection policy over the candidate drivers.
func (s DriverAssignment) selectDriver(o *order.Order, drivers []*driver.Driver) (*driver.Driver, error) {
	var best *driver.Driver

	for _, d := range drivers {
		if err := d.Validate(); err != nil {
			return nil, err
		}

		if !d.Serves(o.DeliveryArea()) || !d.CanTakeOrder() {
			continue
		}

		if best == nil || lessLoaded(d, best) {
			best = d
		}
	}

	if best == nil {
		return nil, ErrNoDriverAvailable
	}

	return best, nil
}

// lessLoaded reports whether a should be preferred over b: fewer active
// orders, then earlier registration, then lower id.
func lessLoaded(a, b *driver.Driver) bool {
	if a.ActiveOrders() != b.ActiveOrders() {
		return a.ActiveOrders() < b.ActiveOrders()
	}
	if !a.RegisteredAt().Equal(b.RegisteredAt()) {
		return a.RegisteredAt().Before(b.RegisteredAt())
	}
	return a.ID().String() < b.ID().String()
}
