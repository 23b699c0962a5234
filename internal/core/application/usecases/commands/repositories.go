// Package commands contains the business operations that modify system
// state. All commands follow the same pattern: a validated command object, a
// handler going through a unit of work, and persistence via the conditional
// writes of the order repository.
package commands

import (
	"context"

	"yega/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers, narrowed to the aggregates each command touches.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PositionRepoFactory provides access to the position repository within a transaction.
	PositionRepoFactory interface {
		PositionRepository() ports.PositionRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PositionUoW manages transactions for position-only operations.
	PositionUoW interface {
		TxManager
		PositionRepoFactory
	}

	// PositionUoWFactory creates position unit of work instances.
	PositionUoWFactory interface {
		Create() PositionUoW
	}
)
