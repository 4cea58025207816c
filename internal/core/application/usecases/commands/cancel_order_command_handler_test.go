package commands_test

import (
	"testing"
	"time"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_NewOrderNoRelease(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 4)

	cmd, err := commands.NewCancelOrderCommand(existingOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()
	orderRepo.On("Update", ctx, existingOrder).Return(nil).Once()

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// Nothing was reserved for a New order, so nothing is released and the
	// product repository is never touched.
	assert.Equal(t, order.Cancelled, cancelled.Status())
	uow.AssertNotCalled(t, "ProductRepository")
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ConfirmedOrderReleasesStock(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 4)

	require.NoError(t, existingOrder.Confirm(time.Now().UTC()))
	require.NoError(t, sellerProduct.Reserve(decimal.NewFromInt(4)))

	cmd, err := commands.NewCancelOrderCommand(existingOrder.ID())
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

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Cancelled, cancelled.Status())
	assert.True(t, sellerProduct.Quantity().Equal(decimal.NewFromInt(10)))
	assert.True(t, sellerProduct.Reserved().Equal(decimal.Zero))

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ShippedOrderRejected(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 2)

	now := time.Now().UTC()
	require.NoError(t, existingOrder.Confirm(now))
	require.NoError(t, existingOrder.Pay(now))
	require.NoError(t, existingOrder.Ship(sellerProduct.ID(), now))

	cmd, err := commands.NewCancelOrderCommand(existingOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Shipped, existingOrder.Status())
	uow.AssertExpectations(t)
}
