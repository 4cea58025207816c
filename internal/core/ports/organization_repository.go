package ports

import (
	"context"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/organization"
)

// OrganizationRepository defines the persistence contract for organizations
// and their employees. Both are reference data for the order lifecycle:
// order creation only needs existence checks and identifiers.
type OrganizationRepository interface {
	// AddOrganization persists a new organization.
	AddOrganization(ctx context.Context, aggregate *organization.Organization) error

	// UpdateOrganization persists contact/profile changes.
	UpdateOrganization(ctx context.Context, aggregate *organization.Organization) error

	// GetOrganization retrieves an organization by its unique identifier.
	GetOrganization(ctx context.Context, id kernel.UUID) (*organization.Organization, error)

	// AddEmployee persists a new employee.
	AddEmployee(ctx context.Context, employee *organization.Employee) error

	// GetEmployee retrieves an employee by its unique identifier.
	GetEmployee(ctx context.Context, id kernel.UUID) (*organization.Employee, error)
}
