package order

import "time"

// HistoryEntry is a single record in an order's status history: which status
// the order entered, when, and which actor caused it. Entries are append-only
// and never mutated retroactively; the sequence of entries is the audit trail
// of the order.
type HistoryEntry struct {
	status Status
	at     time.Time
	actor  string
}

// NewHistoryEntry creates a history entry. The actor string is the rendered
// form of the kernel.Actor that performed the transition.
func NewHistoryEntry(status Status, at time.Time, actor string) HistoryEntry {
	return HistoryEntry{status: status, at: at, actor: actor}
}

// Status returns the status the order entered.
func (e HistoryEntry) Status() Status {
	return e.status
}

// At returns the time of the transition.
func (e HistoryEntry) At() time.Time {
	return e.at
}

// Actor returns the rendered actor identity, e.g. "payment-system" or
// "buyer:<uuid>".
func (e HistoryEntry) Actor() string {
	return e.actor
}
