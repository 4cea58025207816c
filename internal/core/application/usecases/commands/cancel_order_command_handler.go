package commands

import (
	"context"
	"time"

	"wholesale/internal/core/domain/model/order"
)

// CancelOrderCommandHandler transitions an order to Cancelled. When the
// previous status held a stock reservation (Confirmed or Paid) the reserved
// units of every line are released in the same transaction, restoring the
// pre-reservation stock levels exactly.
type CancelOrderCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderProductUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation and returns the updated order.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	releaseStock, err := existingOrder.Cancel(time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if releaseStock {
		productRepo := uow.ProductRepository()
		for _, item := range existingOrder.Items() {
			releasedProduct, getErr := productRepo.GetForUpdate(ctx, item.ProductID())
			if getErr != nil {
				return nil, getErr
			}

			if err = releasedProduct.Release(item.Quantity()); err != nil {
				return nil, err
			}

			if err = productRepo.Update(ctx, releasedProduct); err != nil {
				return nil, err
			}
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
