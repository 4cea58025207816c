package commands

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAdjustProductStockCommandIsNotConstructed = errors.New(
		"AdjustProductStockCommand must be created via NewAdjustProductStockCommand constructor",
	)
)

// AdjustProductStockCommand represents a deliberate stock intake or write-off.
// A positive delta adds units to the available bucket, a negative delta
// removes them. This is the only operation besides reserve/release that
// touches stock levels, and the only one that changes the total.
type AdjustProductStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	delta     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAdjustProductStockCommand creates a command to adjust a product's stock.
// The delta must be non-zero.
func NewAdjustProductStockCommand(productID kernel.UUID, delta decimal.Decimal) (AdjustProductStockCommand, error) {
	stockCommand := AdjustProductStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stockCommand.setProductID(productID),
		stockCommand.setDelta(delta),
	); err != nil {
		return AdjustProductStockCommand{}, err
	}

	return stockCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustProductStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustProductStockCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being adjusted.
func (c AdjustProductStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// Delta returns the signed stock change.
func (c AdjustProductStockCommand) Delta() decimal.Decimal {
	return c.delta
}

func (c *AdjustProductStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}

	c.productID = productID
	return nil
}

func (c *AdjustProductStockCommand) setDelta(delta decimal.Decimal) error {
	if delta.IsZero() {
		return errs.NewValueIsInvalidError("delta")
	}

	c.delta = delta
	return nil
}
