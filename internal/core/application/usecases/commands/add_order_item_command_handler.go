package commands

import (
	"context"
	"fmt"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"
)

// AddOrderItemCommandHandler appends a product line to an order that is still
// in New status. The product must belong to the order's seller, and the unit
// price on the line is snapshotted from the product at this moment.
type AddOrderItemCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order lines.
func NewAddOrderItemCommandHandler(uowFactory OrderProductUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated order. The available
// stock is checked up front for early feedback; the binding reservation still
// happens only at confirmation.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (*order.Order, error) {
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

	orderedProduct, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if !orderedProduct.OrganizationID().IsEqual(existingOrder.SellerID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("productID",
			fmt.Errorf("product %s does not belong to seller %s", orderedProduct.ID(), existingOrder.SellerID()))
	}

	if orderedProduct.Quantity().LessThan(cmd.Quantity()) {
		return nil, errs.NewInsufficientStockError(
			orderedProduct.ID().String(), cmd.Quantity().String(), orderedProduct.Quantity().String())
	}

	item, err := order.NewItem(kernel.NewUUID(), orderedProduct.ID(), cmd.Quantity(), orderedProduct.Price())
	if err != nil {
		return nil, err
	}

	if err = existingOrder.AddItem(item); err != nil {
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
