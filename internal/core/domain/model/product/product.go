package product

import (
	"errors"
	"fmt"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is the aggregate the inventory ledger operates on. It belongs to
// exactly one organization (the seller) and tracks two stock buckets:
//
//   - quantity: units available for sale
//   - reserved: units held against open orders
//
// Invariants:
//   - quantity >= 0 and reserved >= 0 at all times
//   - the pair (quantity, reserved) is adjusted only via Reserve/Release
//     and the deliberate intake operations Restock/RemoveStock
//   - Reserve and Release never change quantity + reserved (conservation);
//     they only move units between the two buckets
type Product struct {
	id             kernel.UUID
	organizationID kernel.UUID
	name           string
	description    string
	quantity       decimal.Decimal
	reserved       decimal.Decimal
	price          decimal.Decimal

	isConstructed bool
}

// NewProduct creates a new Product owned by the given organization.
// Initial stock goes entirely into the available bucket; nothing is reserved.
func NewProduct(
	id kernel.UUID,
	organizationID kernel.UUID,
	name string,
	price decimal.Decimal,
	quantity decimal.Decimal,
) (*Product, error) {
	product := &Product{
		reserved:      decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setOrganizationID(organizationID),
		product.setName(name),
		product.setPrice(price),
		product.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistence, including its
// reserved bucket. Used by repositories only.
func RestoreProduct(
	id kernel.UUID,
	organizationID kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	quantity decimal.Decimal,
	reserved decimal.Decimal,
) (*Product, error) {
	product, err := NewProduct(id, organizationID, name, price, quantity)
	if err != nil {
		return nil, err
	}

	if reserved.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("reserved",
			fmt.Errorf("%s is negative", reserved))
	}

	product.description = description
	product.reserved = reserved
	return product, nil
}

// Validate ensures the Product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// OrganizationID returns the identifier of the selling organization that owns the product.
func (p *Product) OrganizationID() kernel.UUID {
	return p.organizationID
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Quantity returns the stock currently available for sale (unreserved units).
func (p *Product) Quantity() decimal.Decimal {
	return p.quantity
}

// Reserved returns the stock currently held against open orders.
func (p *Product) Reserved() decimal.Decimal {
	return p.reserved
}

// Price returns the current unit price. Order items snapshot this value
// at add-time; later price changes never touch existing orders.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Reserve moves the requested units from the available bucket into the
// reserved bucket. Fails with an InsufficientStockError if fewer units are
// available than requested, leaving both buckets unchanged.
func (p *Product) Reserve(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}

	if p.quantity.LessThan(quantity) {
		return errs.NewInsufficientStockError(p.id.String(), quantity.String(), p.quantity.String())
	}

	p.quantity = p.quantity.Sub(quantity)
	p.reserved = p.reserved.Add(quantity)
	return nil
}

// Release returns previously reserved units to the available bucket.
// The caller must never release more than the outstanding reservation;
// a release that would drive the reserved bucket negative is rejected
// and both buckets stay unchanged.
func (p *Product) Release(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}

	if p.reserved.LessThan(quantity) {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("release of %s exceeds reserved %s", quantity, p.reserved))
	}

	p.quantity = p.quantity.Add(quantity)
	p.reserved = p.reserved.Sub(quantity)
	return nil
}

// Restock is a deliberate stock-intake operation: it adds units to the
// available bucket. This is the only way (besides RemoveStock) the sum
// quantity + reserved changes.
func (p *Product) Restock(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}

	p.quantity = p.quantity.Add(quantity)
	return nil
}

// RemoveStock is a deliberate stock-removal operation taking units out of
// the available bucket, e.g. for write-offs. Reserved units cannot be removed.
func (p *Product) RemoveStock(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}

	if p.quantity.LessThan(quantity) {
		return errs.NewInsufficientStockError(p.id.String(), quantity.String(), p.quantity.String())
	}

	p.quantity = p.quantity.Sub(quantity)
	return nil
}

// ChangePrice sets a new unit price for future orders.
func (p *Product) ChangePrice(price decimal.Decimal) error {
	return p.setPrice(price)
}

// UpdateDetails replaces the product's descriptive fields.
func (p *Product) UpdateDetails(name, description string) error {
	if err := p.setName(name); err != nil {
		return err
	}
	p.description = description
	return nil
}

// EnsureDeletable checks the constraint that a product still in stock
// (available or reserved) cannot be deleted.
func (p *Product) EnsureDeletable() error {
	if p.quantity.IsPositive() || p.reserved.IsPositive() {
		return errs.NewConstraintViolationErrorWithCause("product",
			fmt.Errorf("product %s is in stock and cannot be deleted", p.id))
	}
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setOrganizationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationID", err)
	}
	p.organizationID = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is negative", quantity))
	}
	p.quantity = quantity
	return nil
}
