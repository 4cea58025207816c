package commands

import (
	"context"

	"wholesale/internal/core/domain/model/organization"
)

// CreateOrganizationCommandHandler registers a trading organization.
type CreateOrganizationCommandHandler struct {
	uowFactory OrganizationUoWFactory
}

// NewCreateOrganizationCommandHandler creates a handler for organization registration.
func NewCreateOrganizationCommandHandler(uowFactory OrganizationUoWFactory) CreateOrganizationCommandHandler {
	return CreateOrganizationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created organization.
func (h *CreateOrganizationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrganizationCommand,
) (*organization.Organization, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newOrganization, err := organization.NewOrganization(cmd.OrganizationID(), cmd.Name(), cmd.INN())
	if err != nil {
		return nil, err
	}
	newOrganization.UpdateContacts(cmd.KPP(), cmd.Address(), cmd.Email())

	if err = uow.OrganizationRepository().AddOrganization(ctx, newOrganization); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrganization, nil
}
