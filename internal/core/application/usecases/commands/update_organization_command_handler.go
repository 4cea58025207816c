package commands

import (
	"context"

	"wholesale/internal/core/domain/model/organization"
)

// UpdateOrganizationCommandHandler changes an organization's contact fields.
type UpdateOrganizationCommandHandler struct {
	uowFactory OrganizationUoWFactory
}

// NewUpdateOrganizationCommandHandler creates a handler for organization updates.
func NewUpdateOrganizationCommandHandler(uowFactory OrganizationUoWFactory) UpdateOrganizationCommandHandler {
	return UpdateOrganizationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated organization.
func (h *UpdateOrganizationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrganizationCommand,
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

	organizationRepo := uow.OrganizationRepository()
	existingOrganization, err := organizationRepo.GetOrganization(ctx, cmd.OrganizationID())
	if err != nil {
		return nil, err
	}

	existingOrganization.UpdateContacts(cmd.KPP(), cmd.Address(), cmd.Email())

	if err = organizationRepo.UpdateOrganization(ctx, existingOrganization); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existingOrganization, nil
}
