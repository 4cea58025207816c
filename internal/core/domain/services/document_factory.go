package services

import (
	"time"

	"wholesale/internal/core/domain/model/document"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
)

// DocumentFactory is a domain service that materializes the accounting
// document for an order at shipment time.
//
// Business rules:
//   - the document copies buyer, seller and responsible employee from the order
//   - the document number comes from the seller-scoped sequence, a numbering
//     space independent of order numbers
//   - totalAmount is copied from the order, not recomputed; the lines are
//     copied 1:1 in the same operation so the two agree by construction
//   - document lines keep no reference back to the order lines
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory instance.
func NewDocumentFactory() DocumentFactory {
	return DocumentFactory{}
}

// CreateFromOrder builds the Document for the given order.
//
// The caller supplies the freshly minted document identifier and number and
// persists both the document and the shipped order within one transaction,
// so a failed document creation rolls the shipment back.
func (f DocumentFactory) CreateFromOrder(
	o *order.Order,
	documentID kernel.UUID,
	documentNumber string,
	now time.Time,
) (*document.Document, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	orderItems := o.Items()
	items := make([]*document.Item, 0, len(orderItems))
	for _, orderItem := range orderItems {
		item, err := document.NewItem(
			kernel.NewUUID(),
			orderItem.ProductID(),
			orderItem.Quantity(),
			orderItem.Price(),
			orderItem.Amount(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return document.NewDocument(
		documentID,
		documentNumber,
		o.SellerID(),
		o.BuyerID(),
		o.EmployeeID(),
		o.ID(),
		o.TotalAmount(),
		items,
		now,
	)
}
