package organization

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
)

var (
	// ErrEmployeeIsNotConstructed is returned when an Employee instance was not
	// created through the NewEmployee factory method.
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")
)

// Employee belongs to exactly one Organization and is the human actor who
// creates, confirms and cancels orders on behalf of that organization.
type Employee struct {
	id             kernel.UUID
	organizationID kernel.UUID
	name           string
	position       string
	email          string

	isConstructed bool
}

// NewEmployee creates a new Employee bound to an organization.
func NewEmployee(id, organizationID kernel.UUID, name, position string) (*Employee, error) {
	employee := &Employee{
		isConstructed: true,
	}

	if err := errors.Join(
		employee.setID(id),
		employee.setOrganizationID(organizationID),
		employee.setName(name),
	); err != nil {
		return nil, err
	}

	employee.position = position
	return employee, nil
}

// RestoreEmployee reconstructs an Employee from persistence.
func RestoreEmployee(id, organizationID kernel.UUID, name, position, email string) (*Employee, error) {
	employee, err := NewEmployee(id, organizationID, name, position)
	if err != nil {
		return nil, err
	}

	employee.email = email
	return employee, nil
}

// Validate ensures the Employee was created through NewEmployee.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// ID returns the employee's unique identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// OrganizationID returns the identifier of the organization the employee belongs to.
func (e *Employee) OrganizationID() kernel.UUID {
	return e.organizationID
}

// Name returns the employee's full name.
func (e *Employee) Name() string {
	return e.name
}

// Position returns the employee's job title.
func (e *Employee) Position() string {
	return e.position
}

// Email returns the employee's contact email.
func (e *Employee) Email() string {
	return e.email
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setOrganizationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationID", err)
	}
	e.organizationID = id
	return nil
}

func (e *Employee) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	e.name = name
	return nil
}
