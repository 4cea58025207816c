package commands

import (
	"context"

	"wholesale/internal/core/domain/model/product"
)

// AdjustProductStockCommandHandler applies a deliberate stock intake or
// write-off to a product. The product row is locked for the duration of the
// transaction so the adjustment cannot interleave with a reservation.
type AdjustProductStockCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAdjustProductStockCommandHandler creates a handler for stock adjustments.
func NewAdjustProductStockCommandHandler(uowFactory ProductUoWFactory) AdjustProductStockCommandHandler {
	return AdjustProductStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the adjustment and returns the updated product.
// Write-offs only take from the available bucket; reserved units are
// untouchable until their order is cancelled.
func (h *AdjustProductStockCommandHandler) Handle(
	ctx context.Context,
	cmd AdjustProductStockCommand,
) (*product.Product, error) {
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
	existingProduct, err := productRepo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if cmd.Delta().IsPositive() {
		err = existingProduct.Restock(cmd.Delta())
	} else {
		err = existingProduct.RemoveStock(cmd.Delta().Neg())
	}
	if err != nil {
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
