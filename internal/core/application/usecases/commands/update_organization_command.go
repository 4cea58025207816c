package commands

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"
)

var (
	ErrUpdateOrganizationCommandIsNotConstructed = errors.New(
		"UpdateOrganizationCommand must be created via NewUpdateOrganizationCommand constructor",
	)
)

// UpdateOrganizationCommand represents a request to change an organization's
// contact fields. Identity, name and tax number stay fixed.
type UpdateOrganizationCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	kpp            string
	address        string
	email          string

	guard guard.ConstructorGuard
}

// NewUpdateOrganizationCommand creates a command to update contact fields.
func NewUpdateOrganizationCommand(
	organizationID kernel.UUID,
	kpp string,
	address string,
	email string,
) (UpdateOrganizationCommand, error) {
	organizationCommand := UpdateOrganizationCommand{
		kpp:     kpp,
		address: address,
		email:   email,
		guard:   guard.NewConstructorGuard(),
	}

	if err := organizationCommand.setOrganizationID(organizationID); err != nil {
		return UpdateOrganizationCommand{}, err
	}

	return organizationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrganizationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrganizationCommandIsNotConstructed)
}

// OrganizationID returns the identifier of the organization to update.
func (c UpdateOrganizationCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// KPP returns the new registration reason code.
func (c UpdateOrganizationCommand) KPP() string {
	return c.kpp
}

// Address returns the new postal address.
func (c UpdateOrganizationCommand) Address() string {
	return c.address
}

// Email returns the new contact email.
func (c UpdateOrganizationCommand) Email() string {
	return c.email
}

func (c *UpdateOrganizationCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationID", err)
	}

	c.organizationID = organizationID
	return nil
}
