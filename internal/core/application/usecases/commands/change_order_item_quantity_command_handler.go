package commands

import (
	"context"

	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"
)

// ChangeOrderItemQuantityCommandHandler resizes a line of an order in New
// status. The new quantity is checked against the product's available stock
// for early feedback; the binding reservation still happens at confirmation.
type ChangeOrderItemQuantityCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewChangeOrderItemQuantityCommandHandler creates a handler for resizing order lines.
func NewChangeOrderItemQuantityCommandHandler(uowFactory OrderProductUoWFactory) ChangeOrderItemQuantityCommandHandler {
	return ChangeOrderItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated order.
func (h *ChangeOrderItemQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderItemQuantityCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	item, err := existingOrder.Item(cmd.ItemID())
	if err != nil {
		return nil, err
	}

	orderedProduct, err := uow.ProductRepository().Get(ctx, item.ProductID())
	if err != nil {
		return nil, err
	}

	if orderedProduct.Quantity().LessThan(cmd.Quantity()) {
		return nil, errs.NewInsufficientStockError(
			orderedProduct.ID().String(), cmd.Quantity().String(), orderedProduct.Quantity().String())
	}

	if err = existingOrder.ChangeItemQuantity(cmd.ItemID(), cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existingOrder, nil
}
