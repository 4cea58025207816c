package commands

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrChangeOrderItemQuantityCommandIsNotConstructed = errors.New(
		"ChangeOrderItemQuantityCommand must be created via NewChangeOrderItemQuantityCommand constructor",
	)
)

// ChangeOrderItemQuantityCommand represents a request to resize a line of an
// order still in New status.
type ChangeOrderItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity decimal.Decimal

	guard guard.ConstructorGuard
}

// NewChangeOrderItemQuantityCommand creates a command to resize an order line.
// Requires a positive quantity; a zero quantity means the line should be
// removed instead.
func NewChangeOrderItemQuantityCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	quantity decimal.Decimal,
) (ChangeOrderItemQuantityCommand, error) {
	itemCommand := ChangeOrderItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setItemID(itemID),
		itemCommand.setQuantity(quantity),
	); err != nil {
		return ChangeOrderItemQuantityCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderItemQuantityCommandIsNotConstructed)
}

// OrderID returns the identifier of the order holding the line.
func (c ChangeOrderItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the line to resize.
func (c ChangeOrderItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the new quantity for the line.
func (c ChangeOrderItemQuantityCommand) Quantity() decimal.Decimal {
	return c.quantity
}

func (c *ChangeOrderItemQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderItemQuantityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemID", err)
	}

	c.itemID = itemID
	return nil
}

func (c *ChangeOrderItemQuantityCommand) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
