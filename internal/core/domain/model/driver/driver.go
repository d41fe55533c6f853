package driver

import (
	"errors"
	"time"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/pkg/errs"
	"logitech/internal/pkg/guard"
)

// driverDefaultCapacity is the number of simultaneous active orders a driver
// may carry unless registration specifies otherwise.
const driverDefaultCapacity = 3

var (
	// ErrNameIsRequired is returned when registering a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrDriverIsNotConstructed is returned when using an improperly
	// initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

	// ErrDriverAtCapacity is returned when taking an order would exceed the
	// driver's active-order capacity.
	ErrDriverAtCapacity = errors.New("driver is at capacity")

	// ErrNoActiveOrders is returned when releasing an order from a driver
	// with no active assignments.
	ErrNoActiveOrders = errors.New("driver has no active orders")
)

// Driver is the aggregate root for a delivery driver: identity, the service
// area they cover, and their current assignment load. The assignment service
// reads the load to pick the least-busy eligible driver and mutates it through
// TakeOrder/ReleaseOrder only.
//
// Business rules:
//   - a driver serves exactly one service area
//   - activeOrders never exceeds capacity and never goes negative
//   - registeredAt is immutable and breaks assignment ties deterministically
type Driver struct {
	id           kernel.UUID
	name         string
	serviceArea  kernel.ServiceArea
	capacity     int
	activeOrders int
	registeredAt time.Time
	version      int
	guard        guard.ConstructorGuard
}

// NewDriver registers a new driver with no active orders. A non-positive
// capacity falls back to the default.
func NewDriver(
	id kernel.UUID,
	name string,
	serviceArea kernel.ServiceArea,
	capacity int,
	registeredAt time.Time,
) (*Driver, error) {
	if capacity <= 0 {
		capacity = driverDefaultCapacity
	}

	d := &Driver{
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setServiceArea(serviceArea),
		d.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	d.registeredAt = registeredAt
	return d, nil
}

// RestoreDriver reconstructs a driver aggregate from persistence.
func RestoreDriver(
	id kernel.UUID,
	name string,
	serviceArea kernel.ServiceArea,
	capacity int,
	activeOrders int,
	registeredAt time.Time,
	version int,
) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setServiceArea(serviceArea),
		d.setCapacity(capacity),
		d.setActiveOrders(activeOrders),
		d.setVersion(version),
	); err != nil {
		return nil, err
	}

	d.registeredAt = registeredAt
	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// ServiceArea returns the zone the driver serves.
func (d *Driver) ServiceArea() kernel.ServiceArea {
	return d.serviceArea
}

// Capacity returns the maximum number of simultaneous active orders.
func (d *Driver) Capacity() int {
	return d.capacity
}

// ActiveOrders returns the current number of in-flight assignments.
func (d *Driver) ActiveOrders() int {
	return d.activeOrders
}

// RegisteredAt returns the registration time, used as a deterministic
// tie-break in assignment.
func (d *Driver) RegisteredAt() time.Time {
	return d.registeredAt
}

// Version returns the optimistic-concurrency version the aggregate was
// loaded with. Per-driver mutations are serialized through it so two
// concurrent assignments cannot double-book the same slot.
func (d *Driver) Version() int {
	return d.version
}

// Serves reports whether the driver covers the given delivery area.
func (d *Driver) Serves(area kernel.ServiceArea) bool {
	return d.serviceArea.IsEqual(area)
}

// CanTakeOrder reports whether the driver has a free assignment slot.
func (d *Driver) CanTakeOrder() bool {
	return d.activeOrders < d.capacity
}

// TakeOrder reserves an assignment slot. Returns ErrDriverAtCapacity when
// the driver is fully booked.
func (d *Driver) TakeOrder() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.CanTakeOrder() {
		return ErrDriverAtCapacity
	}

	d.activeOrders++
	return nil
}

// ReleaseOrder frees an assignment slot after a delivery completes.
func (d *Driver) ReleaseOrder() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.activeOrders == 0 {
		return ErrNoActiveOrders
	}

	d.activeOrders--
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setServiceArea(serviceArea kernel.ServiceArea) error {
	if err := serviceArea.Validate(); err != nil {
		return err
	}
	d.serviceArea = serviceArea
	return nil
}

func (d *Driver) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidError("capacity")
	}
	d.capacity = capacity
	return nil
}

func (d *Driver) setActiveOrders(activeOrders int) error {
	if activeOrders < 0 || activeOrders > d.capacity {
		return errs.NewValueIsOutOfRangeError("active orders", activeOrders, 0, d.capacity)
	}
	d.activeOrders = activeOrders
	return nil
}

func (d *Driver) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("driver version",
			errors.New("version must be at least 1"))
	}
	d.version = version
	return nil
}
