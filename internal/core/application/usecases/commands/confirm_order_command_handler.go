package commands

import (
	"context"
	"time"

	"wholesale/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler transitions an order New -> Confirmed and
// reserves stock for every line within the same transaction. If any line
// cannot be reserved the whole confirmation rolls back: there are no partial
// reservations.
//
// Product rows are read under a row-level lock so two orders competing for
// the last units of the same product serialize instead of both succeeding.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderProductUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation and returns the updated order.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
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

	if err = existingOrder.Confirm(time.Now().UTC()); err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	for _, item := range existingOrder.Items() {
		reservedProduct, getErr := productRepo.GetForUpdate(ctx, item.ProductID())
		if getErr != nil {
			return nil, getErr
		}

		if err = reservedProduct.Reserve(item.Quantity()); err != nil {
			return nil, err
		}

		if err = productRepo.Update(ctx, reservedProduct); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existingOrder, nil
}
