// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows and
// enforcing the version compare-and-set on writes.
package orderrepo

import (
	"time"

	"logitech/internal/core/domain/model/kernel"
	"logitech/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps are domain-controlled: GORM's automatic create/update times are
// disabled so what is stored is exactly what the transition engine recorded.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID       uuid.UUID  `gorm:"type:uuid;index"`
	ProductID     uuid.UUID  `gorm:"type:uuid"`
	TransactionID string     `gorm:"uniqueIndex"`
	Amount        int64
	Currency      string
	DeliveryArea  string     `gorm:"index"`
	Status        string     `gorm:"index"`
	DriverID      *uuid.UUID `gorm:"type:uuid;index"`
	Version       int
	CreatedAt     time.Time         `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime:false"`
	History       []HistoryEntryDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryEntryDTO represents one append-only status history record.
// The (order_id, seq) primary key makes appends idempotent: re-inserting an
// existing sequence position is a no-op, so committed entries are never
// rewritten.
type HistoryEntryDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey"`
	Status     string
	OccurredAt time.Time `gorm:"autoCreateTime:false"`
	Actor      string
}

// TableName specifies the database table name for history entries.
func (HistoryEntryDTO) TableName() string {
	return "order_history_entries"
}

// fromDomain converts an order aggregate to its database representation,
// including the full status history with sequence positions.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	history := aggregate.History()
	entries := make([]HistoryEntryDTO, 0, len(history))
	for i, entry := range history {
		entries = append(entries, HistoryEntryDTO{
			OrderID:    aggregate.ID().Bytes(),
			Seq:        i,
			Status:     entry.Status().String(),
			OccurredAt: entry.At(),
			Actor:      entry.Actor(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		BuyerID:       aggregate.BuyerID().Bytes(),
		ProductID:     aggregate.ProductID().Bytes(),
		TransactionID: aggregate.TransactionID(),
		Amount:        aggregate.Price().Amount(),
		Currency:      aggregate.Price().Currency(),
		DeliveryArea:  aggregate.DeliveryArea().Name(),
		Status:        aggregate.Status().String(),
		DriverID:      driverID,
		Version:       aggregate.Version(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		History:       entries,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which revalidates every invariant before the aggregate becomes usable.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	price, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	deliveryArea, err := kernel.NewServiceArea(dto.DeliveryArea)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, entry := range dto.History {
		entryStatus, entryErr := order.StatusFromString(entry.Status)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, order.NewHistoryEntry(entryStatus, entry.OccurredAt, entry.Actor))
	}

	return order.RestoreOrder(
		id,
		buyerID,
		productID,
		dto.TransactionID,
		price,
		deliveryArea,
		status,
		driverID,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
		history,
	)
}
