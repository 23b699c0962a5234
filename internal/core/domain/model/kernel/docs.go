// Package kernel contains shared value objects used across the domain model:
// identifiers, geographic points, and actor roles. All types are immutable and
// constructed through factory functions that enforce their invariants.
package kernel
