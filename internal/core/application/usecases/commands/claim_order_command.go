package commands

import (
	"errors"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/pkg/errs"
	"yega/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand is a courier's attempt to bind itself exclusively to a
// ready order. The attempt is transient: its outcome is granted or rejected,
// never partially applied.
type ClaimOrderCommand struct {
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a validated claim attempt.
func NewClaimOrderCommand(orderID, courierID kernel.UUID) (ClaimOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ClaimOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := courierID.Validate(); err != nil {
		return ClaimOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("courierId", err)
	}

	return ClaimOrderCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order being claimed.
func (c *ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the claiming courier.
func (c *ClaimOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Validate ensures the command was created through the constructor.
func (c *ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}
