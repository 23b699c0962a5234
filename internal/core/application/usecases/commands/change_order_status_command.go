package commands

import (
	"errors"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/core/domain/model/order"
	"yega/internal/pkg/errs"
	"yega/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests a lifecycle transition on behalf of an
// acting role. The role comes from the identity collaborator and is threaded
// explicitly; the core never infers it.
type ChangeOrderStatusCommand struct {
	orderID   kernel.UUID
	role      kernel.Role
	requested order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a validated transition request.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID, role kernel.Role, requested order.Status,
) (ChangeOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := role.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	if err := requested.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:   orderID,
		role:      role,
		requested: requested,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order to transition.
func (c *ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Role returns the acting role.
func (c *ChangeOrderStatusCommand) Role() kernel.Role {
	return c.role
}

// Requested returns the requested target status.
func (c *ChangeOrderStatusCommand) Requested() order.Status {
	return c.requested
}

// Validate ensures the command was created through the constructor.
func (c *ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}
