// Package order provides the order aggregate and its status state machine,
// the core of the marketplace's fulfillment flow.
//
// The package includes:
//   - Order: the aggregate root holding identity, payment reference, driver
//     binding, and the append-only status history
//   - Status: a closed enumeration of lifecycle states with the fixed wire
//     tokens pending, paid, in_transit, delivered, cancelled
//   - HistoryEntry: one audit record of a status change (status, time, actor)
//
// Key business rules:
//   - status transitions follow the strict graph pending → paid → in_transit
//     → delivered, with cancellation as an exception branch from the two
//     pre-transit states only
//   - every mutation is role-gated: the payment system confirms payment, the
//     assignment service dispatches, the assigned driver completes, and
//     buyers cancel their own orders
//   - the driver binding happens exactly once, atomically with the move to
//     in_transit, and is immutable afterwards
//   - history entries are append-only with non-decreasing timestamps
//
// All mutations flow through Order.TransitionTo; no other component writes
// status or history directly.
package order
