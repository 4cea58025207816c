package commands

import (
	"context"
	"fmt"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the buyer, the creating employee and the product, derives the
// seller from the product's owner, obtains the next scoped order number and
// persists the order in New status with its initial line.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, buyerID, employeeID, productID,
//	    decimal.NewFromInt(5), "")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s opened", created.OrderNumber())
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
// The order number is "{prefix}/{n}" where the prefix scopes the counter to
// the buyer/seller pair, so each pair numbers its orders independently.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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
	buyer, err := organizationRepo.GetOrganization(ctx, cmd.BuyerID())
	if err != nil {
		return nil, err
	}

	employee, err := organizationRepo.GetEmployee(ctx, cmd.EmployeeID())
	if err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	orderedProduct, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}
	sellerID := orderedProduct.OrganizationID()

	prefix := fmt.Sprintf("b%s_s%s", buyer.ID(), sellerID)
	sequenceValue, err := uow.NumberSequence().Next(ctx, prefix)
	if err != nil {
		return nil, err
	}
	orderNumber := fmt.Sprintf("%s/%d", prefix, sequenceValue)

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		buyer.ID(),
		sellerID,
		employee.ID(),
		orderNumber,
		cmd.Comments(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	// Unit price is snapshotted from the product at add-time.
	item, err := order.NewItem(kernel.NewUUID(), orderedProduct.ID(), cmd.Quantity(), orderedProduct.Price())
	if err != nil {
		return nil, err
	}

	if err = newOrder.AddItem(item); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
