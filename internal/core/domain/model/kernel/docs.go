// Package kernel provides shared value objects for the order engine domain:
//
//   - UUID: validated entity identifier wrapping github.com/google/uuid
//   - Money: order amount fixed to IDR semantics
//   - ServiceArea: geographic zone token used for driver matching
//   - Actor: authenticated principal with an explicit role, passed into every
//     engine mutation instead of ambient session state
//
// All types are immutable value objects whose zero values are invalid.
// Constructors validate their inputs and a Validate method detects zero
// values that bypassed construction.
package kernel
