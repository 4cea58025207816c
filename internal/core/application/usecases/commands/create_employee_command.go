package commands

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"
)

var (
	ErrCreateEmployeeCommandIsNotConstructed = errors.New(
		"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
	)
)

// CreateEmployeeCommand represents a request to register an employee in an
// existing organization.
type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID     kernel.UUID
	organizationID kernel.UUID
	name           string
	position       string

	guard guard.ConstructorGuard
}

// NewCreateEmployeeCommand creates a command to register an employee.
func NewCreateEmployeeCommand(
	employeeID kernel.UUID,
	organizationID kernel.UUID,
	name string,
	position string,
) (CreateEmployeeCommand, error) {
	employeeCommand := CreateEmployeeCommand{
		position: position,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		employeeCommand.setEmployeeID(employeeID),
		employeeCommand.setOrganizationID(organizationID),
		employeeCommand.setName(name),
	); err != nil {
		return CreateEmployeeCommand{}, err
	}

	return employeeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the identifier the employee will be created under.
func (c CreateEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// OrganizationID returns the identifier of the employing organization.
func (c CreateEmployeeCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// Name returns the employee's full name.
func (c CreateEmployeeCommand) Name() string {
	return c.name
}

// Position returns the employee's job title. May be empty.
func (c CreateEmployeeCommand) Position() string {
	return c.position
}

func (c *CreateEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *CreateEmployeeCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationID", err)
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateEmployeeCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
