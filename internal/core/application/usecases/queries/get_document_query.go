package queries

import (
	"errors"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetDocumentQueryIsNotConstructed = errors.New(
		"GetDocumentQuery must be created via NewGetDocumentQuery constructor",
	)
)

// GetDocumentQuery retrieves a single accounting document with its lines.
type GetDocumentQuery struct {
	documentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDocumentQuery creates a query to retrieve one document by identifier.
func NewGetDocumentQuery(documentID kernel.UUID) (GetDocumentQuery, error) {
	if err := documentID.Validate(); err != nil {
		return GetDocumentQuery{}, errs.NewValueIsRequiredErrorWithCause("documentID", err)
	}

	return GetDocumentQuery{
		documentID: documentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentQueryIsNotConstructed)
}

// DocumentID returns the identifier of the document to retrieve.
func (q GetDocumentQuery) DocumentID() kernel.UUID {
	return q.documentID
}

// GetDocumentQueryResponse is the full document view including its lines.
type GetDocumentQueryResponse struct {
	ID             kernel.UUID
	DocumentNumber string
	DocumentDate   time.Time
	SellerID       kernel.UUID
	BuyerID        kernel.UUID
	EmployeeID     kernel.UUID
	OrderID        kernel.UUID
	TotalAmount    decimal.Decimal
	Items          []GetDocumentQueryItemResponse
}

// GetDocumentQueryItemResponse is one line of the document view.
type GetDocumentQueryItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  decimal.Decimal
	Price     decimal.Decimal
	Amount    decimal.Decimal
}
