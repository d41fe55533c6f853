package queries

import (
	"context"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler projects dashboard counts straight from the
// orders table. Reads only status tokens; the projection itself is pure.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for dashboard stat queries.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the stats query for the viewer's scope.
func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (Stats, error) {
	if err := query.Validate(); err != nil {
		return Stats{}, err
	}

	sql := `SELECT status FROM orders`
	args := make([]any, 0, 1)

	switch query.Viewer().Role() {
	case kernel.RoleBuyer:
		sql += ` WHERE buyer_id = ?`
		args = append(args, query.Viewer().ID().Bytes())
	case kernel.RoleDriver:
		sql += ` WHERE driver_id = ?`
		args = append(args, query.Viewer().ID().Bytes())
	default: // admin sees everything
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()

	statuses := make([]order.Status, 0)
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return Stats{}, err
		}

		status, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return Stats{}, statusErr
		}
		statuses = append(statuses, status)
	}

	if err = rows.Err(); err != nil {
		return Stats{}, err
	}

	return ProjectStats(statuses), nil
}
