package queries

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"
)

var (
	ErrGetEmployeesQueryIsNotConstructed = errors.New(
		"GetEmployeesQuery must be created via NewGetEmployeesQuery constructor",
	)
)

// GetEmployeesQuery retrieves the employee roster of one organization.
type GetEmployeesQuery struct {
	organizationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEmployeesQuery creates a roster query for the given organization.
func NewGetEmployeesQuery(organizationID kernel.UUID) (GetEmployeesQuery, error) {
	if err := organizationID.Validate(); err != nil {
		return GetEmployeesQuery{}, errs.NewValueIsRequiredErrorWithCause("organizationID", err)
	}

	return GetEmployeesQuery{
		organizationID: organizationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeesQueryIsNotConstructed)
}

// OrganizationID returns the organization whose roster is requested.
func (q GetEmployeesQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// GetEmployeesQueryResponse is one employee row of the roster.
type GetEmployeesQueryResponse struct {
	ID             kernel.UUID
	OrganizationID kernel.UUID
	Name           string
	Position       string
	Email          string
}
