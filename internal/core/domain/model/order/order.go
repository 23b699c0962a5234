package order

import (
	"errors"
	"fmt"
	"time"

	"yega/internal/core/domain/model/kernel"
	"yega/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderAlreadyClaimed is returned when a claim is attempted on an
	// order that already carries a courier binding.
	ErrOrderAlreadyClaimed = errors.New("order is already claimed by a courier")

	// ErrOrderNotClaimable is returned when a claim is attempted on an order
	// that is not in the ready status.
	ErrOrderNotClaimable = errors.New("order is not in a claimable status")
)

// Order is the aggregate root for a delivery order. It owns the status state
// machine and the courier binding.
//
// Invariants:
//   - storeID, clientID, items, total and address are immutable after creation
//   - courierID is set at most once, only by a successful claim at StatusListo
//   - courier-owned stages past the claim always carry a courier binding
//   - status moves only through ValidateTransition-approved transitions
type Order struct {
	id        kernel.UUID
	storeID   kernel.UUID
	clientID  kernel.UUID
	courierID *kernel.UUID

	items   []Item
	total   float64
	address Address

	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in StatusPendiente. Items and total come from the
// pricing collaborator; the core stores them verbatim and never recomputes.
func NewOrder(
	id, storeID, clientID kernel.UUID,
	items []Item,
	total float64,
	address Address,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPendiente,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(storeID, clientID),
		o.setItems(items),
		o.setTotal(total),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, checking that the
// stored status and courier binding are mutually consistent.
func RestoreOrder(
	id, storeID, clientID kernel.UUID,
	courierID *kernel.UUID,
	items []Item,
	total float64,
	address Address,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(storeID, clientID),
		o.setItems(items),
		o.setTotal(total),
		o.setAddress(address),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		if !status.AllowsCourier() {
			return nil, errs.NewValueIsInvalidErrorWithCause("courierId",
				fmt.Errorf("status %s does not allow a courier binding", status))
		}
		cID := *courierID
		o.courierID = &cID
	} else if status.RequiresCourier() {
		return nil, errs.NewValueIsInvalidErrorWithCause("courierId",
			fmt.Errorf("status %s requires a courier binding", status))
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StoreID returns the owning store's identifier.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// ClientID returns the ordering client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Courier returns the bound courier's identifier, or nil before a claim.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Items returns the order lines. The returned slice must not be mutated.
func (o *Order) Items() []Item {
	return o.items
}

// Total returns the total fixed at creation time.
func (o *Order) Total() float64 {
	return o.total
}

// Address returns the delivery destination.
func (o *Order) Address() Address {
	return o.address
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last persisted mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Claim binds a courier to the order. Only valid at StatusListo with no
// courier bound yet; the binding never changes afterwards.
func (o *Order) Claim(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return ErrOrderAlreadyClaimed
	}
	if o.status != StatusListo {
		return ErrOrderNotClaimable
	}

	o.courierID = &courierID
	o.updatedAt = now
	return nil
}

// TransitionTo moves the order to the requested status after validating the
// move against the transition table for the acting role. A cancellation after
// a claim keeps the courier binding for history.
func (o *Order) TransitionTo(role kernel.Role, requested Status, now time.Time) error {
	if err := ValidateTransition(role, o.status, requested); err != nil {
		return err
	}
	if requested.RequiresCourier() && o.courierID == nil {
		return fmt.Errorf("%w: %s requires a claimed courier", ErrInvalidTransition, requested)
	}

	o.status = requested
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(storeID, clientID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("storeId", err)
	}
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	o.storeID = storeID
	o.clientID = clientID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"total", fmt.Errorf("%f is negative", total))
	}
	o.total = total
	return nil
}

func (o *Order) setAddress(address Address) error {
	if address.Street() == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.address = address
	return nil
}
