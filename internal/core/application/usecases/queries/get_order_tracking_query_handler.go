package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/core/domain/model/order"
	"logitech/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler reads the tracking view for a single order:
// the current snapshot plus the append-only status history in recorded
// order.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking queries.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the tracking query. Returns an error wrapping
// errs.ErrObjectNotFound for an unknown order id.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	var (
		response GetOrderTrackingQueryResponse
		id       uuid.UUID
		driverID *uuid.UUID
		status   string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			driver_id,
			transaction_id,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&status,
		&driverID,
		&response.TransactionID,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderTrackingQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
				"orderID", query.OrderID().String(), err,
			)
		}
		return GetOrderTrackingQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	if driverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*driverID)[:])
		if driverErr != nil {
			return GetOrderTrackingQueryResponse{}, driverErr
		}
		response.DriverID = &dID
	}

	if response.Status, err = order.StatusFromString(status); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	history, err := h.loadHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	response.History = history

	return response, nil
}

func (h GetOrderTrackingQueryHandler) loadHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]TrackingHistoryEntry, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, occurred_at, actor
		FROM order_history_entries
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]TrackingHistoryEntry, 0)
	for rows.Next() {
		var (
			raw        string
			occurredAt time.Time
			actor      string
		)
		if err = rows.Scan(&raw, &occurredAt, &actor); err != nil {
			return nil, err
		}

		status, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return nil, statusErr
		}

		history = append(history, TrackingHistoryEntry{
			Status: status,
			At:     occurredAt,
			Actor:  actor,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
