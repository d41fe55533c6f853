// Package eventrepo persists the set of already-applied payment-gateway
// event ids, backing the webhook handler's exactly-once semantics.
package eventrepo

import (
	"context"
	"time"

	"logitech/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProcessedEventDTO represents one applied payment-gateway event.
type ProcessedEventDTO struct {
	EventID     string `gorm:"primaryKey"`
	ProcessedAt time.Time
}

// TableName specifies the database table name for processed events.
func (ProcessedEventDTO) TableName() string {
	return "processed_events"
}

// GormProcessedEventRepository implements ports.ProcessedEventRepository
// using GORM.
type GormProcessedEventRepository struct {
	db *gorm.DB
}

// NewGormProcessedEventRepository creates a new GORM processed-event
// repository.
func NewGormProcessedEventRepository(db *gorm.DB) *GormProcessedEventRepository {
	return &GormProcessedEventRepository{db: db}
}

// Record marks the event id as processed via an insert with ON CONFLICT DO
// NOTHING. A zero-row insert means another delivery already recorded the id,
// which the caller treats as a benign duplicate. Because the insert runs in
// the surrounding transaction, a rolled-back handler leaves the id
// unrecorded and the event retryable.
func (r *GormProcessedEventRepository) Record(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		return false, errs.NewValueIsRequiredError("eventID")
	}

	dto := ProcessedEventDTO{
		EventID:     eventID,
		ProcessedAt: time.Now().UTC(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 0, nil
}
