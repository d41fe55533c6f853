package kernel

import (
	"fmt"
	"strings"

	"logitech/internal/pkg/errs"
	"logitech/internal/pkg/guard"
)

// serviceAreaMaxLength bounds the area token length as stored in the database.
const serviceAreaMaxLength = 100

// ErrServiceAreaIsNotConstructed is returned when validating a zero-value ServiceArea.
var ErrServiceAreaIsNotConstructed = errs.NewValueIsRequiredError(
	"service area must be created via NewServiceArea constructor")

// ServiceArea is the geographic zone token used to match drivers to orders.
// Matching is an exact, case-sensitive comparison of the stored token, so the
// constructor only trims surrounding whitespace and never rewrites the value.
//
// The zero value is invalid; use NewServiceArea.
type ServiceArea struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewServiceArea creates a ServiceArea from a zone token such as
// "jakarta-selatan". The token must be non-empty after trimming and fit the
// persisted column length.
func NewServiceArea(name string) (ServiceArea, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ServiceArea{}, errs.NewValueIsRequiredError("service area")
	}
	if len(name) > serviceAreaMaxLength {
		return ServiceArea{}, errs.NewValueIsInvalidErrorWithCause("service area",
			fmt.Errorf("length %d exceeds maximum %d", len(name), serviceAreaMaxLength))
	}

	return ServiceArea{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the area token.
func (a ServiceArea) Name() string {
	return a.name
}

// IsEqual reports whether two areas denote the same zone.
func (a ServiceArea) IsEqual(other ServiceArea) bool {
	return a.name == other.name
}

// String implements fmt.Stringer.
func (a ServiceArea) String() string {
	return a.name
}

// Validate returns ErrServiceAreaIsNotConstructed for the zero value.
func (a ServiceArea) Validate() error {
	return a.guard.Validate(ErrServiceAreaIsNotConstructed)
}
