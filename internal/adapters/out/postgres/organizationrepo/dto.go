// Package organizationrepo implements persistence for organizations and
// their employees.
package organizationrepo

import (
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/organization"

	"github.com/google/uuid"
)

// OrganizationDTO represents the database structure for organizations.
type OrganizationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"index"`
	INN     string    `gorm:"column:inn"`
	KPP     string    `gorm:"column:kpp"`
	Address string
	Email   string
}

// TableName overrides GORM's default naming to use "organizations".
func (OrganizationDTO) TableName() string {
	return "organizations"
}

// EmployeeDTO represents the database structure for employees.
type EmployeeDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	Position       string
	Email          string
}

// TableName overrides GORM's default naming to use "employees".
func (EmployeeDTO) TableName() string {
	return "employees"
}

func organizationFromDomain(aggregate *organization.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		INN:     aggregate.INN(),
		KPP:     aggregate.KPP(),
		Address: aggregate.Address(),
		Email:   aggregate.Email(),
	}
}

func organizationToDomain(dto OrganizationDTO) (*organization.Organization, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return organization.RestoreOrganization(id, dto.Name, dto.INN, dto.KPP, dto.Address, dto.Email)
}

func employeeFromDomain(employee *organization.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:             employee.ID().Bytes(),
		OrganizationID: employee.OrganizationID().Bytes(),
		Name:           employee.Name(),
		Position:       employee.Position(),
		Email:          employee.Email(),
	}
}

func employeeToDomain(dto EmployeeDTO) (*organization.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	return organization.RestoreEmployee(id, organizationID, dto.Name, dto.Position, dto.Email)
}
