package queries

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/guard"
)

var (
	ErrGetOrganizationsQueryIsNotConstructed = errors.New(
		"GetOrganizationsQuery must be created via NewGetOrganizationsQuery constructor",
	)
)

// GetOrganizationsQuery retrieves the counterparty directory: every
// organization registered in the system, sorted by name.
type GetOrganizationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrganizationsQuery creates the directory query.
func NewGetOrganizationsQuery() GetOrganizationsQuery {
	return GetOrganizationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrganizationsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrganizationsQueryIsNotConstructed)
}

// GetOrganizationsQueryResponse is one organization row of the directory.
type GetOrganizationsQueryResponse struct {
	ID      kernel.UUID
	Name    string
	INN     string
	KPP     string
	Address string
	Email   string
}
