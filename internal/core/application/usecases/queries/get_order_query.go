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
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with all of its lines.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full order view including its lines.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	OrderNumber      string
	BuyerID          kernel.UUID
	SellerID         kernel.UUID
	EmployeeID       kernel.UUID
	Status           string
	OrderDate        time.Time
	StatusChangeDate time.Time
	TotalAmount      decimal.Decimal
	Comments         string
	DocumentID       *kernel.UUID
	Items            []GetOrderQueryItemResponse
}

// GetOrderQueryItemResponse is one line of the order view.
type GetOrderQueryItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  decimal.Decimal
	Price     decimal.Decimal
	Amount    decimal.Decimal
}
