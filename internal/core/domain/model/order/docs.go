// Package order contains the Order aggregate and its lifecycle rules: the
// status enum, the role-gated transition table, and the claim invariant that
// binds at most one courier to an order.
package order
