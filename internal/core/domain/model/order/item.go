package order

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
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a line of an order. It references a product and carries the
// quantity ordered together with the unit price snapshotted at add-time.
// The price is deliberately not live-linked to the product: later price
// changes never affect existing orders.
//
// amount is always price * quantity and is recomputed on every quantity
// change, never stored independently.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  decimal.Decimal
	price     decimal.Decimal
	amount    decimal.Decimal

	isConstructed bool
}

// NewItem creates an order line for the given product. The price is the
// snapshot taken from the product at the moment the line is added.
func NewItem(id, productID kernel.UUID, quantity, price decimal.Decimal) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	if err := item.setQuantity(quantity); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
func RestoreItem(id, productID kernel.UUID, quantity, price decimal.Decimal) (*Item, error) {
	return NewItem(id, productID, quantity, price)
}

// Validate ensures the Item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the product this line refers to.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() decimal.Decimal {
	return i.quantity
}

// Price returns the unit price snapshotted when the line was added.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// Amount returns the line total, price * quantity.
func (i *Item) Amount() decimal.Decimal {
	return i.amount
}

// changeQuantity resizes the line and recomputes its amount.
// Only the owning Order may call this, and only while the order is New.
func (i *Item) changeQuantity(quantity decimal.Decimal) error {
	return i.setQuantity(quantity)
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

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	i.quantity = quantity
	i.amount = i.price.Mul(quantity)
	return nil
}
