package commands

import (
	"context"
	"strconv"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/domain/services"
)

// ShipOrderCommandHandler transitions an order Paid -> Shipped and creates
// the accounting document derived from the order. The status change and the
// document are written in one transaction: a shipped order without its
// document (or the reverse) can never be observed.
//
// The document number comes from a counter scoped to the seller, so each
// seller numbers its documents independently starting at 1.
type ShipOrderCommandHandler struct {
	uowFactory      ShipOrderUoWFactory
	documentFactory services.DocumentFactory
}

// NewShipOrderCommandHandler creates a handler for order shipment.
func NewShipOrderCommandHandler(
	uowFactory ShipOrderUoWFactory,
	documentFactory services.DocumentFactory,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory:      uowFactory,
		documentFactory: documentFactory,
	}
}

// Handle processes the shipment and returns the updated order. The document
// identifier is reachable through the order; the document itself is read via
// the document queries.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (*order.Order, error) {
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

	now := time.Now().UTC()
	documentID := kernel.NewUUID()

	// Status check first: an order that cannot be shipped must not consume
	// a document number.
	if err = existingOrder.Ship(documentID, now); err != nil {
		return nil, err
	}

	sequenceValue, err := uow.NumberSequence().Next(ctx, "doc_"+existingOrder.SellerID().String())
	if err != nil {
		return nil, err
	}
	documentNumber := strconv.FormatInt(sequenceValue, 10)

	shipmentDocument, err := h.documentFactory.CreateFromOrder(existingOrder, documentID, documentNumber, now)
	if err != nil {
		return nil, err
	}

	if err = uow.DocumentRepository().Add(ctx, shipmentDocument); err != nil {
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
