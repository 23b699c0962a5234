// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"
	"time"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/core/domain/model/order"
)

// ErrPredicateFailed is returned by conditional writes when the guarding
// predicate no longer held at write time: the caller lost a race. This is an
// expected steady-state outcome, not a hard failure; callers re-fetch and
// decide whether to retry.
var ErrPredicateFailed = errors.New("conditional write predicate failed")

// OrderRepository is the persistence contract for order aggregates.
//
// All mutations of an existing order go through the conditional writes Claim
// and TransitionStatus. Each is a single atomic read-check-write with respect
// to concurrent callers on the same order id; that primitive is what makes
// claim-once and status-transition races safe. There is no unconditional
// update.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Claim atomically binds a courier to the order, guarded by
	// (status == listo AND courier unset). On a lost race it returns
	// ErrPredicateFailed; the caller re-reads to classify the loss.
	Claim(ctx context.Context, orderID, courierID kernel.UUID, now time.Time) error

	// TransitionStatus atomically moves the order from one status to
	// another, guarded by (status == from). Returns ErrPredicateFailed when
	// a concurrent mutation changed the status between the caller's read
	// and this write.
	TransitionStatus(ctx context.Context, orderID kernel.UUID, from, to order.Status, now time.Time) error

	// ListAvailable retrieves claimable orders: status listo with no courier.
	ListAvailable(ctx context.Context) ([]*order.Order, error)

	// ListForStore retrieves orders placed at the given store.
	ListForStore(ctx context.Context, storeID kernel.UUID) ([]*order.Order, error)

	// ListForClient retrieves orders placed by the given client.
	ListForClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error)

	// ListForCourier retrieves orders bound to the given courier.
	ListForCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}
