package queries

import (
	"errors"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)

	// ErrViewerIsNotSupported is returned for system actors, which have no
	// dashboard of their own.
	ErrViewerIsNotSupported = errors.New("viewer role has no order dashboard")
)

// GetOrderStatsQuery retrieves dashboard counts scoped to the viewer:
// buyers see their own orders, drivers the orders assigned to them, admins
// every order.
//
// Example:
//
//	viewer, _ := kernel.NewBuyerActor(buyerID)
//	query, _ := NewGetOrderStatsQuery(viewer)
//	stats, err := NewGetOrderStatsQueryHandler(db).Handle(ctx, query)
type GetOrderStatsQuery struct {
	viewer kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a dashboard query for the given viewer.
// System actors are rejected.
func NewGetOrderStatsQuery(viewer kernel.Actor) (GetOrderStatsQuery, error) {
	if err := viewer.Validate(); err != nil {
		return GetOrderStatsQuery{}, err
	}

	if viewer.IsSystem() {
		return GetOrderStatsQuery{}, ErrViewerIsNotSupported
	}

	return GetOrderStatsQuery{
		viewer: viewer,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// Viewer returns the principal the stats are scoped to.
func (q GetOrderStatsQuery) Viewer() kernel.Actor {
	return q.viewer
}
