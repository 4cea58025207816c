package commands

import (
	"context"

	"wholesale/internal/core/domain/model/product"
)

// CreateProductCommandHandler registers a product in the catalog of an
// existing organization. The organization lookup doubles as the existence
// check: an unknown owner fails with a not-found error before anything is
// written.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created product.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
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

	owner, err := uow.OrganizationRepository().GetOrganization(ctx, cmd.OrganizationID())
	if err != nil {
		return nil, err
	}

	newProduct, err := product.NewProduct(cmd.ProductID(), owner.ID(), cmd.Name(), cmd.Price(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	if cmd.Description() != "" {
		if err = newProduct.UpdateDetails(cmd.Name(), cmd.Description()); err != nil {
			return nil, err
		}
	}

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newProduct, nil
}
