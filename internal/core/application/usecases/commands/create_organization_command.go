package commands

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"
)

var (
	ErrCreateOrganizationCommandIsNotConstructed = errors.New(
		"CreateOrganizationCommand must be created via NewCreateOrganizationCommand constructor",
	)
)

// CreateOrganizationCommand represents a request to register a trading
// organization. Name and tax number are required; contact fields are optional.
type CreateOrganizationCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	name           string
	inn            string
	kpp            string
	address        string
	email          string

	guard guard.ConstructorGuard
}

// NewCreateOrganizationCommand creates a command to register an organization.
func NewCreateOrganizationCommand(
	organizationID kernel.UUID,
	name string,
	inn string,
	kpp string,
	address string,
	email string,
) (CreateOrganizationCommand, error) {
	organizationCommand := CreateOrganizationCommand{
		kpp:     kpp,
		address: address,
		email:   email,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		organizationCommand.setOrganizationID(organizationID),
		organizationCommand.setName(name),
		organizationCommand.setINN(inn),
	); err != nil {
		return CreateOrganizationCommand{}, err
	}

	return organizationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrganizationCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrganizationCommandIsNotConstructed)
}

// OrganizationID returns the identifier the organization will be created under.
func (c CreateOrganizationCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// Name returns the organization's legal name.
func (c CreateOrganizationCommand) Name() string {
	return c.name
}

// INN returns the organization's tax number.
func (c CreateOrganizationCommand) INN() string {
	return c.inn
}

// KPP returns the organization's registration reason code. May be empty.
func (c CreateOrganizationCommand) KPP() string {
	return c.kpp
}

// Address returns the organization's postal address. May be empty.
func (c CreateOrganizationCommand) Address() string {
	return c.address
}

// Email returns the organization's contact email. May be empty.
func (c CreateOrganizationCommand) Email() string {
	return c.email
}

func (c *CreateOrganizationCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateOrganizationCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateOrganizationCommand) setINN(inn string) error {
	if inn == "" {
		return errs.NewValueIsRequiredError("inn")
	}

	c.inn = inn
	return nil
}
