package ports

import "context"

// ProcessedEventRepository records payment-gateway event ids that have
// already been applied. Payment gateways retry webhooks on ambiguous network
// failures, so exactly-once application semantics are enforced here rather
// than assumed from the wire.
type ProcessedEventRepository interface {
	// Record marks the provider event id as processed. It returns true when
	// the id was already recorded, in which case the caller treats the
	// delivery as a benign duplicate. The insert participates in the
	// surrounding transaction: a rolled-back handler leaves the id
	// unrecorded and the event safe to retry.
	Record(ctx context.Context, eventID string) (alreadyProcessed bool, err error)
}
