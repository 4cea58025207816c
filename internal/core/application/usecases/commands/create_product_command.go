package commands

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand represents a request to register a product in an
// organization's catalog with its initial price and stock.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID      kernel.UUID
	organizationID kernel.UUID
	name           string
	description    string
	price          decimal.Decimal
	quantity       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Price must be non-negative; the initial quantity may be zero.
func NewCreateProductCommand(
	productID kernel.UUID,
	organizationID kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	quantity decimal.Decimal,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setOrganizationID(organizationID),
		productCommand.setName(name),
		productCommand.setPrice(price),
		productCommand.setQuantity(quantity),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier the new product will be created under.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// OrganizationID returns the identifier of the owning organization.
func (c CreateProductCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description. May be empty.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the initial unit price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// Quantity returns the initial available stock.
func (c CreateProductCommand) Quantity() decimal.Decimal {
	return c.quantity
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationID", err)
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setQuantity(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
