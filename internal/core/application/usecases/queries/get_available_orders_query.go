package queries

import (
	"errors"
	"time"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the claimable pool: orders that are ready
// for pickup and have no courier bound yet.
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the unclaimed ready pool.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// GetAvailableOrdersQueryResponse is the claimable order read model. It
// deliberately omits the client's identity; couriers only need pickup data.
type GetAvailableOrdersQueryResponse struct {
	ID        kernel.UUID
	StoreID   kernel.UUID
	Total     float64
	Street    string
	City      string
	CreatedAt time.Time
}
