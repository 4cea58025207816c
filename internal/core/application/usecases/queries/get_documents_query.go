package queries

import (
	"errors"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetDocumentsQueryIsNotConstructed = errors.New(
		"GetDocumentsQuery must be created via NewGetDocumentsQuery constructor",
	)
)

// GetDocumentsQuery retrieves accounting documents, optionally restricted to
// one organization acting as seller or buyer. Filters combine with AND; an
// unfiltered query returns every document, newest first.
type GetDocumentsQuery struct {
	sellerID *kernel.UUID
	buyerID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDocumentsQuery creates an unfiltered query matching every document.
func NewGetDocumentsQuery() GetDocumentsQuery {
	return GetDocumentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentsQueryIsNotConstructed)
}

// ForSeller restricts the result to documents issued by the given organization.
func (q GetDocumentsQuery) ForSeller(sellerID kernel.UUID) GetDocumentsQuery {
	q.sellerID = &sellerID
	return q
}

// ForBuyer restricts the result to documents addressed to the given organization.
func (q GetDocumentsQuery) ForBuyer(buyerID kernel.UUID) GetDocumentsQuery {
	q.buyerID = &buyerID
	return q
}

// GetDocumentsQueryResponse is one document row of the listing.
type GetDocumentsQueryResponse struct {
	ID             kernel.UUID
	DocumentNumber string
	DocumentDate   time.Time
	SellerID       kernel.UUID
	BuyerID        kernel.UUID
	EmployeeID     kernel.UUID
	OrderID        kernel.UUID
	TotalAmount    decimal.Decimal
}
