// Package services contains domain services coordinating behavior across
// aggregates. DriverAssignment matches paid orders with available drivers
// using a deterministic least-loaded selection policy.
package services
