package commands

import (
	"context"

	"wholesale/internal/core/domain/model/product"
)

// UpdateProductCommandHandler changes a product's descriptive fields and
// unit price.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated product.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()
	existingProduct, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = existingProduct.UpdateDetails(cmd.Name(), cmd.Description()); err != nil {
		return nil, err
	}

	if err = existingProduct.ChangePrice(cmd.Price()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, existingProduct); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existingProduct, nil
}
