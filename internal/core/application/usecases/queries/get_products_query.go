package queries

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery retrieves the product catalog, optionally restricted to a
// single owning organization.
type GetProductsQuery struct {
	organizationID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates an unfiltered query matching every product.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// ForOrganization restricts the result to the catalog of one organization.
func (q GetProductsQuery) ForOrganization(organizationID kernel.UUID) GetProductsQuery {
	q.organizationID = &organizationID
	return q
}

// GetProductsQueryResponse is one product row of the catalog listing.
type GetProductsQueryResponse struct {
	ID             kernel.UUID
	OrganizationID kernel.UUID
	Name           string
	Description    string
	Quantity       decimal.Decimal
	Reserved       decimal.Decimal
	Price          decimal.Decimal
}
