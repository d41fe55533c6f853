// Package ports defines repository interfaces for the order engine.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update performs a compare-and-set on the aggregate's version: it only
// writes when the stored version still matches the version the aggregate was
// loaded with, and returns an error wrapping errs.ErrVersionConflict when a
// concurrent writer won the race. Transitions for a single order are thereby
// serialized; the loser retries with fresh state.
type OrderRepository interface {
	// Add persists a new order aggregate, including its initial history entry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order under the version
	// compare-and-set described above. New history entries are appended;
	// existing entries are never touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id with its full status history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTransactionID retrieves the order bound to an external payment
	// reference. Returns an error wrapping errs.ErrObjectNotFound when the
	// reference is unknown.
	GetByTransactionID(ctx context.Context, transactionID string) (*order.Order, error)

	// GetFirstInPaidStatusUnassigned retrieves the oldest paid order without
	// a driver, used by the assignment sweep.
	GetFirstInPaidStatusUnassigned(ctx context.Context) (*order.Order, error)

	// GetAllByBuyer retrieves all orders created by the buyer, for
	// dashboard projection.
	GetAllByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error)

	// GetAllByDriver retrieves all orders ever assigned to the driver, for
	// dashboard projection.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)
}
