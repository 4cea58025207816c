package queries

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetNegativeStockQueryIsNotConstructed = errors.New(
		"GetNegativeStockQuery must be created via NewGetNegativeStockQuery constructor",
	)
)

// GetNegativeStockQuery finds products whose stock buckets went negative.
// Under correct operation the result is always empty: reservations are
// rejected when availability is short and releases are capped by the
// outstanding reservation. A non-empty result means bookkeeping was corrupted
// outside the reserve/release path and is worth an alert.
type GetNegativeStockQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNegativeStockQuery creates the audit query.
func NewGetNegativeStockQuery() GetNegativeStockQuery {
	return GetNegativeStockQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNegativeStockQuery) Validate() error {
	return q.guard.Validate(ErrGetNegativeStockQueryIsNotConstructed)
}

// GetNegativeStockQueryResponse is one offending product row.
type GetNegativeStockQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Quantity decimal.Decimal
	Reserved decimal.Decimal
}
