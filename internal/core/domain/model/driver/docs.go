// Package driver provides the driver aggregate for the assignment side of
// the order engine. A driver covers one service area and carries a bounded
// number of simultaneous active orders; the assignment service picks the
// least-loaded eligible driver and reserves a slot through TakeOrder.
package driver
