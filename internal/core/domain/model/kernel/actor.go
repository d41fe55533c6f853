package kernel

import (
	"fmt"

	"logitech/internal/pkg/errs"
	"logitech/internal/pkg/guard"
)

// Role identifies the capability set an actor acts under when mutating an
// order. Roles are closed: the transition rules match on them exhaustively.
type Role string

const (
	// RoleBuyer is the customer who created the order.
	RoleBuyer Role = "buyer"
	// RoleDriver is a delivery driver.
	RoleDriver Role = "driver"
	// RolePaymentSystem is the payment-gateway webhook processor.
	RolePaymentSystem Role = "payment-system"
	// RoleAssignmentService is the driver-assignment service.
	RoleAssignmentService Role = "assignment-service"
	// RoleAdmin is a marketplace administrator.
	RoleAdmin Role = "admin"
)

// ErrActorIsNotConstructed is returned when validating a zero-value Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via one of the actor constructors")

// Actor is the authenticated principal requesting an order mutation.
// It carries an explicit role and, for user roles, the user's identifier.
// Engine calls receive an Actor instead of reading ambient session state, so
// authorization decisions stay independent of the transport layer.
//
// System actors (payment-system, assignment-service) carry no identifier.
// The zero value is invalid; use the constructors.
type Actor struct { //nolint:recvcheck //using for validation
	role  Role
	id    UUID
	guard guard.ConstructorGuard
}

// NewBuyerActor creates an actor for the buyer with the given user id.
func NewBuyerActor(id UUID) (Actor, error) {
	return newUserActor(RoleBuyer, id)
}

// NewDriverActor creates an actor for the driver with the given driver id.
func NewDriverActor(id UUID) (Actor, error) {
	return newUserActor(RoleDriver, id)
}

// NewAdminActor creates an actor for an administrator.
func NewAdminActor(id UUID) (Actor, error) {
	return newUserActor(RoleAdmin, id)
}

// PaymentSystemActor returns the system actor used by the payment webhook
// handler. There is no identity beyond the role itself.
func PaymentSystemActor() Actor {
	return Actor{role: RolePaymentSystem, guard: guard.NewConstructorGuard()}
}

// AssignmentServiceActor returns the system actor used by the driver
// assignment service.
func AssignmentServiceActor() Actor {
	return Actor{role: RoleAssignmentService, guard: guard.NewConstructorGuard()}
}

func newUserActor(role Role, id UUID) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		role:  role,
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// ID returns the actor's user id. For system actors the returned UUID is the
// zero value and fails Validate.
func (a Actor) ID() UUID {
	return a.id
}

// IsSystem reports whether the actor is one of the system roles.
func (a Actor) IsSystem() bool {
	return a.role == RolePaymentSystem || a.role == RoleAssignmentService
}

// String renders the actor as recorded in the order status history:
// "payment-system" for system actors, "buyer:<uuid>" for user actors.
func (a Actor) String() string {
	if a.IsSystem() {
		return string(a.role)
	}
	return fmt.Sprintf("%s:%s", a.role, a.id)
}

// Validate returns ErrActorIsNotConstructed for the zero value.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
