package order

import (
	"errors"
	"fmt"

	"logitech/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The underlying string
// values are the wire tokens persisted to the database and exposed to
// dashboards; they must never change.
//
// State transitions:
//
//	pending ──┬──> paid ──┬──> in_transit ──> delivered
//	          │           │
//	          └───────────┴──> cancelled
//
// delivered and cancelled are terminal: no outgoing transitions exist.
type Status string

const (
	// Pending is the initial status: the order is created and awaiting payment.
	Pending Status = "pending"

	// Paid indicates the payment gateway confirmed payment. The order is
	// eligible for driver assignment.
	Paid Status = "paid"

	// InTransit indicates a driver is bound and the delivery is underway.
	InTransit Status = "in_transit"

	// Delivered is the terminal success status.
	Delivered Status = "delivered"

	// Cancelled is the terminal failure status, reachable only from the two
	// pre-transit states.
	Cancelled Status = "cancelled"
)

// ErrInvalidTransition is returned for any attempt to skip a state, move
// backward, or mutate a terminal state. It is never retried automatically.
var ErrInvalidTransition = errors.New("invalid status transition")

// allowedTransitions returns the edges of the status graph.
// Terminal states map to an empty slice.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Paid, Cancelled},
		Paid:      {InTransit, Cancelled},
		InTransit: {Delivered},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses a persisted wire token into a Status.
// Returns an error for any token outside the closed enumeration.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the Status value is one of the closed enumeration.
func (s Status) Validate() error {
	if _, ok := allowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire token. It implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether an edge from s to target exists in the
// status graph. It returns false for invalid statuses.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range allowedTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ValidateTransitionTo returns ErrInvalidTransition (wrapped with the edge
// that was attempted) unless the graph permits moving from s to target.
func (s Status) ValidateTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return nil
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver binding. Orders bind a driver exactly when they reach in_transit,
// so pre-transit and cancelled orders must have none, and in_transit and
// delivered orders must have one.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	requiresDriver := s == InTransit || s == Delivered

	if hasDriver && !requiresDriver {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a driver", s))
	}
	if !hasDriver && requiresDriver {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no driver", s))
	}
	return nil
}
