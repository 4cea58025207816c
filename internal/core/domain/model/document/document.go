package document

import (
	"errors"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrDocumentIsNotConstructed is returned when a Document instance was not
	// created through the NewDocument factory method.
	ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")
)

// Document is the immutable accounting record produced when an order ships.
// It freezes the parties, the responsible employee, the total and a 1:1 copy
// of the order's lines at the moment of shipment. A document is created
// exactly once per order and is never mutated afterwards, which is why the
// type exposes no modifying methods at all.
//
// The totalAmount is copied from the order rather than recomputed: the items
// are copied in the same transaction, so equality holds by construction.
type Document struct {
	id             kernel.UUID
	documentNumber string
	documentDate   time.Time
	sellerID       kernel.UUID
	buyerID        kernel.UUID
	employeeID     kernel.UUID
	orderID        kernel.UUID
	totalAmount    decimal.Decimal
	items          []*Item

	isConstructed bool
}

// NewDocument creates the accounting document for a shipped order.
// The document number is a seller-scoped sequence value, distinct from the
// order numbering space.
func NewDocument(
	id kernel.UUID,
	documentNumber string,
	sellerID kernel.UUID,
	buyerID kernel.UUID,
	employeeID kernel.UUID,
	orderID kernel.UUID,
	totalAmount decimal.Decimal,
	items []*Item,
	now time.Time,
) (*Document, error) {
	doc := &Document{
		documentDate:  now,
		totalAmount:   totalAmount,
		isConstructed: true,
	}

	if err := errors.Join(
		doc.setID(id),
		doc.setDocumentNumber(documentNumber),
		doc.setSellerID(sellerID),
		doc.setBuyerID(buyerID),
		doc.setEmployeeID(employeeID),
		doc.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	doc.items = items

	return doc, nil
}

// RestoreDocument reconstructs a Document from persistence.
func RestoreDocument(
	id kernel.UUID,
	documentNumber string,
	documentDate time.Time,
	sellerID kernel.UUID,
	buyerID kernel.UUID,
	employeeID kernel.UUID,
	orderID kernel.UUID,
	totalAmount decimal.Decimal,
	items []*Item,
) (*Document, error) {
	doc, err := NewDocument(id, documentNumber, sellerID, buyerID, employeeID, orderID, totalAmount, items, documentDate)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate ensures the Document was created through NewDocument.
func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

// ID returns the document's unique identifier.
func (d *Document) ID() kernel.UUID {
	return d.id
}

// DocumentNumber returns the seller-scoped sequence number, e.g. "42".
func (d *Document) DocumentNumber() string {
	return d.documentNumber
}

// DocumentDate returns the creation time of the document.
func (d *Document) DocumentDate() time.Time {
	return d.documentDate
}

// SellerID returns the identifier of the selling organization.
func (d *Document) SellerID() kernel.UUID {
	return d.sellerID
}

// BuyerID returns the identifier of the buying organization.
func (d *Document) BuyerID() kernel.UUID {
	return d.buyerID
}

// EmployeeID returns the identifier of the responsible employee.
func (d *Document) EmployeeID() kernel.UUID {
	return d.employeeID
}

// OrderID returns the identifier of the order this document was derived from.
func (d *Document) OrderID() kernel.UUID {
	return d.orderID
}

// TotalAmount returns the total copied from the order at shipment.
func (d *Document) TotalAmount() decimal.Decimal {
	return d.totalAmount
}

// Items returns the frozen line copies. The slice is a copy.
func (d *Document) Items() []*Item {
	items := make([]*Item, len(d.items))
	copy(items, d.items)
	return items
}

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setDocumentNumber(documentNumber string) error {
	if documentNumber == "" {
		return errs.NewValueIsRequiredError("documentNumber")
	}
	d.documentNumber = documentNumber
	return nil
}

func (d *Document) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerID", err)
	}
	d.sellerID = id
	return nil
}

func (d *Document) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerID", err)
	}
	d.buyerID = id
	return nil
}

func (d *Document) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeID", err)
	}
	d.employeeID = id
	return nil
}

func (d *Document) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	d.orderID = id
	return nil
}
