package commands_test

import (
	"testing"
	"time"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/domain/model/product"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestOrderWithItem builds a New order holding one line for the product.
func newTestOrderWithItem(t *testing.T, p *product.Product, quantity int64) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), p.OrganizationID(), kernel.NewUUID(),
		"b1_s1/1", "", time.Now().UTC())
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), p.ID(), decimal.NewFromInt(quantity), p.Price())
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))
	return o
}

func TestConfirmOrderCommandHandler_Handle_ReservesEveryLine(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 4)

	cmd, err := commands.NewConfirmOrderCommand(existingOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()
	productRepo.On("GetForUpdate", ctx, sellerProduct.ID()).Return(sellerProduct, nil).Once()
	productRepo.On("Update", ctx, sellerProduct).Return(nil).Once()
	orderRepo.On("Update", ctx, existingOrder).Return(nil).Once()

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	confirmed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Confirmed, confirmed.Status())
	assert.True(t, sellerProduct.Quantity().Equal(decimal.NewFromInt(6)))
	assert.True(t, sellerProduct.Reserved().Equal(decimal.NewFromInt(4)))

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 3)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 4)

	cmd, err := commands.NewConfirmOrderCommand(existingOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()
	productRepo.On("GetForUpdate", ctx, sellerProduct.ID()).Return(sellerProduct, nil).Once()

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)

	// Stock is untouched when the reservation fails.
	assert.True(t, sellerProduct.Quantity().Equal(decimal.NewFromInt(3)))
	assert.True(t, sellerProduct.Reserved().Equal(decimal.Zero))
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 2)
	require.NoError(t, existingOrder.Confirm(time.Now().UTC()))

	cmd, err := commands.NewConfirmOrderCommand(existingOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertExpectations(t)
}
