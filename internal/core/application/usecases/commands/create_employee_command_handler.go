package commands

import (
	"context"

	"wholesale/internal/core/domain/model/organization"
)

// CreateEmployeeCommandHandler registers an employee in an existing
// organization. The organization lookup doubles as the existence check.
type CreateEmployeeCommandHandler struct {
	uowFactory OrganizationUoWFactory
}

// NewCreateEmployeeCommandHandler creates a handler for employee registration.
func NewCreateEmployeeCommandHandler(uowFactory OrganizationUoWFactory) CreateEmployeeCommandHandler {
	return CreateEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created employee.
func (h *CreateEmployeeCommandHandler) Handle(
	ctx context.Context,
	cmd CreateEmployeeCommand,
) (*organization.Employee, error) {
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
	employer, err := organizationRepo.GetOrganization(ctx, cmd.OrganizationID())
	if err != nil {
		return nil, err
	}

	newEmployee, err := organization.NewEmployee(cmd.EmployeeID(), employer.ID(), cmd.Name(), cmd.Position())
	if err != nil {
		return nil, err
	}

	if err = organizationRepo.AddEmployee(ctx, newEmployee); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newEmployee, nil
}
