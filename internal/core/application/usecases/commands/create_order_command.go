package commands

import (
	"errors"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/core/domain/model/order"
	"yega/internal/pkg/errs"
	"yega/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order. Line items and the total arrive
// pre-computed from the pricing collaborator; the core stores them verbatim.
type CreateOrderCommand struct {
	orderID  kernel.UUID
	storeID  kernel.UUID
	clientID kernel.UUID
	items    []order.Item
	total    float64
	address  order.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated command to place an order.
func NewCreateOrderCommand(
	orderID, storeID, clientID kernel.UUID,
	items []order.Item,
	total float64,
	address order.Address,
) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := storeID.Validate(); err != nil {
		return CreateOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("storeId", err)
	}
	if err := clientID.Validate(); err != nil {
		return CreateOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	return CreateOrderCommand{
		orderID:  orderID,
		storeID:  storeID,
		clientID: clientID,
		items:    items,
		total:    total,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier for the new order.
func (c *CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StoreID returns the receiving store's identifier.
func (c *CreateOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// ClientID returns the ordering client's identifier.
func (c *CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Items returns the priced order lines.
func (c *CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Total returns the pre-computed total.
func (c *CreateOrderCommand) Total() float64 {
	return c.total
}

// Address returns the delivery destination.
func (c *CreateOrderCommand) Address() order.Address {
	return c.address
}

// Validate ensures the command was created through the constructor.
func (c *CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
