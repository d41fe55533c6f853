// Package queries contains read-only operations for dashboards and tracking
// views. Queries bypass the domain aggregates and read projection-friendly
// snapshots directly from the database.
package queries

import "logitech/internal/core/domain/model/order"

// Stats is the dashboard aggregate projected over a viewer's orders.
// Completed counts delivered orders; cancelled orders contribute to Total
// only.
type Stats struct {
	Total     int
	Pending   int
	InTransit int
	Completed int
}

// ProjectStats folds order statuses into dashboard counts. Pure and
// stateless: recomputed on every read, never stored.
func ProjectStats(statuses []order.Status) Stats {
	var stats Stats
	for _, status := range statuses {
		stats.Total++
		switch status {
		case order.Pending:
			stats.Pending++
		case order.InTransit:
			stats.InTransit++
		case order.Delivered:
			stats.Completed++
		}
	}

	return stats
}
