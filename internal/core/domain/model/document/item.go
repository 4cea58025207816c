package document

import (
	"errors"
	"fmt"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("document Item must be created via NewItem constructor")
)

// Item is a frozen copy of an order line taken at the moment of document
// creation: product, quantity, price and amount are copied by value and keep
// no live reference back to the order item.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  decimal.Decimal
	price     decimal.Decimal
	amount    decimal.Decimal

	isConstructed bool
}

// NewItem creates a document line from copied order line values.
// The amount is taken as-is rather than recomputed so the copy is exact.
func NewItem(id, productID kernel.UUID, quantity, price, amount decimal.Decimal) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
	); err != nil {
		return nil, err
	}

	if !quantity.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	item.quantity = quantity
	item.price = price
	item.amount = amount
	return item, nil
}

// RestoreItem reconstructs a document Item from persistence.
func RestoreItem(id, productID kernel.UUID, quantity, price, amount decimal.Decimal) (*Item, error) {
	return NewItem(id, productID, quantity, price, amount)
}

// Validate ensures the Item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the product this line refers to.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the copied quantity.
func (i *Item) Quantity() decimal.Decimal {
	return i.quantity
}

// Price returns the copied unit price.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// Amount returns the copied line total.
func (i *Item) Amount() decimal.Decimal {
	return i.amount
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	i.productID = id
	return nil
}
