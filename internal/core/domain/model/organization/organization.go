package organization

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
)

var (
	// ErrOrganizationIsNotConstructed is returned when an Organization instance was not
	// created through the NewOrganization factory method.
	ErrOrganizationIsNotConstructed = errors.New("Organization must be created via NewOrganization constructor")
)

// Organization is a trading entity. It acts as buyer and/or seller across
// many orders, owns a products catalog and an employee roster.
//
// Identity and name are immutable once created; only contact/profile fields
// can change afterwards.
type Organization struct {
	id      kernel.UUID
	name    string
	inn     string
	kpp     string
	address string
	email   string

	isConstructed bool
}

// NewOrganization creates a new Organization with validation.
// Name and tax number (inn) are required; contact fields may be set later.
func NewOrganization(id kernel.UUID, name, inn string) (*Organization, error) {
	org := &Organization{
		isConstructed: true,
	}

	if err := errors.Join(
		org.setID(id),
		org.setName(name),
		org.setINN(inn),
	); err != nil {
		return nil, err
	}

	return org, nil
}

// RestoreOrganization reconstructs an Organization from persistence.
func RestoreOrganization(id kernel.UUID, name, inn, kpp, address, email string) (*Organization, error) {
	org, err := NewOrganization(id, name, inn)
	if err != nil {
		return nil, err
	}

	org.kpp = kpp
	org.address = address
	org.email = email
	return org, nil
}

// Validate ensures the Organization was created through NewOrganization.
func (o *Organization) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrganizationIsNotConstructed
	}
	return nil
}

// IsEqual compares two organizations by their unique identifiers.
func (o *Organization) IsEqual(other *Organization) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the organization's unique identifier.
func (o *Organization) ID() kernel.UUID {
	return o.id
}

// Name returns the organization's legal name.
func (o *Organization) Name() string {
	return o.name
}

// INN returns the organization's tax number.
func (o *Organization) INN() string {
	return o.inn
}

// KPP returns the organization's registration reason code.
func (o *Organization) KPP() string {
	return o.kpp
}

// Address returns the organization's postal address.
func (o *Organization) Address() string {
	return o.address
}

// Email returns the organization's contact email.
func (o *Organization) Email() string {
	return o.email
}

// UpdateContacts replaces the mutable contact/profile fields.
// Identity and name stay fixed for the lifetime of the organization.
func (o *Organization) UpdateContacts(kpp, address, email string) {
	o.kpp = kpp
	o.address = address
	o.email = email
}

func (o *Organization) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Organization) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}

func (o *Organization) setINN(inn string) error {
	if inn == "" {
		return errs.NewValueIsRequiredError("inn")
	}
	o.inn = inn
	return nil
}
