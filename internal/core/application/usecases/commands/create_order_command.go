package commands

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a buyer's request to open a new order for a
// product. The selling organization is not part of the command: it is derived
// from the product's owner, so a buyer cannot order a seller's product under
// another seller's name.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, buyerID, employeeID, productID,
//	    decimal.NewFromInt(5), "urgent")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	buyerID    kernel.UUID
	employeeID kernel.UUID
	productID  kernel.UUID
	quantity   decimal.Decimal
	comments   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order with a single
// initial line. Validates identifiers and requires a positive quantity.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	buyerID kernel.UUID,
	employeeID kernel.UUID,
	productID kernel.UUID,
	quantity decimal.Decimal,
	comments string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		comments: comments,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setBuyerID(buyerID),
		orderCommand.setEmployeeID(employeeID),
		orderCommand.setProductID(productID),
		orderCommand.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the identifier of the buying organization.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// EmployeeID returns the identifier of the employee placing the order.
func (c CreateOrderCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// ProductID returns the identifier of the product on the initial line.
func (c CreateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the ordered quantity for the initial line.
func (c CreateOrderCommand) Quantity() decimal.Decimal {
	return c.quantity
}

// Comments returns the free-form comments for the order. May be empty.
func (c CreateOrderCommand) Comments() string {
	return c.comments
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerID", err)
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeID", err)
	}

	c.employeeID = employeeID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}

	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
