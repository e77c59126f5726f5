// Package kernel contains the shared value objects of the custody domain.
//
// Identity is the opaque pre-authenticated credential plus display name used
// for the owner, the supplier, and every courier. AccessGuard is the sole
// authorization primitive: it compares a caller identity against the identity
// a lifecycle phase expects. Quantity is a non-negative amount used for item
// volumes and prices.
//
// All types here are immutable and safe for concurrent use.
package kernel
