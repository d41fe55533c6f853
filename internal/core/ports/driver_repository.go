package ports

import (
	"context"

	"logitech/internal/core/domain/model/driver"
	"logitech/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// Update applies the same version compare-and-set as OrderRepository, so a
// driver's capacity slots cannot be double-booked by concurrent assignments.
type DriverRepository interface {
	// Add persists a newly registered driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver under version
	// compare-and-set.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by id.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAvailableByServiceArea retrieves drivers covering the area whose
	// active-order count is below capacity, ordered by active orders,
	// registration time, then id. This is the driver directory boundary the
	// assignment service selects from.
	GetAvailableByServiceArea(ctx context.Context, area kernel.ServiceArea) ([]*driver.Driver, error)
}
