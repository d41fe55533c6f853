package queries

import (
	"errors"
	"time"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/core/domain/model/order"
	"logitech/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery retrieves an order's current state and its full
// status history for the tracking view.
type GetOrderTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a tracking query for the given order.
func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, err
	}

	return GetOrderTrackingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderTrackingQueryResponse is the tracking-view snapshot of an order.
type GetOrderTrackingQueryResponse struct {
	ID            kernel.UUID
	Status        order.Status
	DriverID      *kernel.UUID
	TransactionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	History       []TrackingHistoryEntry
}

// TrackingHistoryEntry is one audit record in the tracking view.
type TrackingHistoryEntry struct {
	Status order.Status
	At     time.Time
	Actor  string
}
