// Package queries contains read-only operations implementing the query side
// of the CQRS architecture. Query handlers bypass the domain aggregates and
// read projections straight from the database; they never mutate state.
package queries

import (
	"errors"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders matching a set of composable filters.
// Filters combine with AND; a query with no filters returns every order.
// Results are always sorted by order date, newest first.
//
// The With*/For* methods return a modified copy, so filters chain:
//
//	query := NewGetOrdersQuery().
//	    ForBuyer(buyerID).
//	    WithStatus(order.Confirmed).
//	    WithinPeriod(from, to)
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	buyerID       *kernel.UUID
	sellerID      *kernel.UUID
	employeeID    *kernel.UUID
	status        *order.Status
	excludeStatus *order.Status
	dateFrom      *time.Time
	dateTo        *time.Time
	productID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an unfiltered query matching every order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ForBuyer restricts the result to orders placed by the given organization.
func (q GetOrdersQuery) ForBuyer(buyerID kernel.UUID) GetOrdersQuery {
	q.buyerID = &buyerID
	return q
}

// ForSeller restricts the result to orders addressed to the given organization.
func (q GetOrdersQuery) ForSeller(sellerID kernel.UUID) GetOrdersQuery {
	q.sellerID = &sellerID
	return q
}

// ForEmployee restricts the result to orders created by the given employee.
func (q GetOrdersQuery) ForEmployee(employeeID kernel.UUID) GetOrdersQuery {
	q.employeeID = &employeeID
	return q
}

// WithStatus restricts the result to orders in the given status.
func (q GetOrdersQuery) WithStatus(status order.Status) GetOrdersQuery {
	q.status = &status
	return q
}

// ExcludingStatus drops orders in the given status from the result. The
// seller's order list uses this to hide draft orders the buyer has not
// submitted for confirmation yet.
func (q GetOrdersQuery) ExcludingStatus(status order.Status) GetOrdersQuery {
	q.excludeStatus = &status
	return q
}

// WithinPeriod restricts the result to orders whose order date falls inside
// the given range. Both bounds are inclusive; either may be the zero time to
// leave that side open.
func (q GetOrdersQuery) WithinPeriod(from, to time.Time) GetOrdersQuery {
	if !from.IsZero() {
		q.dateFrom = &from
	}
	if !to.IsZero() {
		q.dateTo = &to
	}
	return q
}

// ContainingProduct restricts the result to orders holding at least one line
// for the given product.
func (q GetOrdersQuery) ContainingProduct(productID kernel.UUID) GetOrdersQuery {
	q.productID = &productID
	return q
}

// GetOrdersQueryResponse is one order row of the listing. Items are not
// included; GetOrderQuery returns a single order with its lines.
type GetOrdersQueryResponse struct {
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
}
