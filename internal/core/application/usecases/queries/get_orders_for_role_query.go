package queries

import (
	"errors"
	"time"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/core/domain/model/order"
	"yega/internal/pkg/errs"
	"yega/internal/pkg/guard"
)

var ErrGetOrdersForRoleQueryIsNotConstructed = errors.New(
	"GetOrdersForRoleQuery must be created via NewGetOrdersForRoleQuery constructor",
)

// GetOrdersForRoleQuery retrieves the orders visible to a principal. Each
// role sees a different slice of the table: stores and clients see their own
// orders, couriers see their assigned orders plus the unclaimed ready pool,
// admins see everything.
//
// Example:
//
//	query, err := NewGetOrdersForRoleQuery(courierID, kernel.RoleCourier)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("%s %s\n", o.ID, o.Status)
//	}
type GetOrdersForRoleQuery struct {
	principalID kernel.UUID
	role        kernel.Role

	guard guard.ConstructorGuard
}

// NewGetOrdersForRoleQuery creates a validated role-scoped order listing.
func NewGetOrdersForRoleQuery(principalID kernel.UUID, role kernel.Role) (GetOrdersForRoleQuery, error) {
	if err := principalID.Validate(); err != nil {
		return GetOrdersForRoleQuery{}, errs.NewValueIsRequiredErrorWithCause("principalId", err)
	}
	if err := role.Validate(); err != nil {
		return GetOrdersForRoleQuery{}, err
	}

	return GetOrdersForRoleQuery{
		principalID: principalID,
		role:        role,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// PrincipalID returns the requesting principal's identifier.
func (q GetOrdersForRoleQuery) PrincipalID() kernel.UUID {
	return q.principalID
}

// Role returns the requesting principal's role.
func (q GetOrdersForRoleQuery) Role() kernel.Role {
	return q.role
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersForRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForRoleQueryIsNotConstructed)
}

// CourierPositionView is the courier's latest reported position, joined onto
// an order when a courier is bound and has reported at least once.
type CourierPositionView struct {
	Point      kernel.GeoPoint
	ReportedAt time.Time
}

// GetOrdersForRoleQueryResponse is the order read model for listings.
type GetOrdersForRoleQueryResponse struct {
	ID              kernel.UUID
	Status          order.Status
	StoreID         kernel.UUID
	ClientID        kernel.UUID
	CourierID       *kernel.UUID
	Total           float64
	Street          string
	City            string
	CreatedAt       time.Time
	CourierPosition *CourierPositionView
}
