package order

import (
	"errors"

	"yega/internal/pkg/errs"
)

// Item is one order line: a catalog product reference, a quantity, and the
// unit price fixed by the pricing collaborator at creation time. Items are
// immutable after the order is created.
type Item struct {
	productRef string
	quantity   int
	unitPrice  float64
}

// NewItem creates a validated order line.
func NewItem(productRef string, quantity int, unitPrice float64) (Item, error) {
	if productRef == "" {
		return Item{}, errs.NewValueIsRequiredError("productRef")
	}
	if quantity < 1 || quantity > maxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", errors.New("unit price cannot be negative"))
	}

	return Item{
		productRef: productRef,
		quantity:   quantity,
		unitPrice:  unitPrice,
	}, nil
}

const maxItemQuantity = 1000

// ProductRef returns the catalog product reference.
func (i Item) ProductRef() string {
	return i.productRef
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price fixed at creation time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() float64 {
	return float64(i.quantity) * i.unitPrice
}
