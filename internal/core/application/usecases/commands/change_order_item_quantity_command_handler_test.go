package commands_test

import (
	"testing"
	"time"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderItemQuantityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 2)
	itemID := existingOrder.Items()[0].ID()

	cmd, err := commands.NewChangeOrderItemQuantityCommand(existingOrder.ID(), itemID, decimal.NewFromInt(7))
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
	productRepo.On("Get", ctx, sellerProduct.ID()).Return(sellerProduct, nil).Once()
	orderRepo.On("Update", ctx, existingOrder).Return(nil).Once()

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderItemQuantityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	item := updated.Items()[0]
	assert.True(t, item.Quantity().Equal(decimal.NewFromInt(7)))
	assert.True(t, updated.TotalAmount().Equal(sellerProduct.Price().Mul(decimal.NewFromInt(7))))
	uow.AssertExpectations(t)
}

func TestChangeOrderItemQuantityCommandHandler_Handle_NotEnoughStock(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 5)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 2)
	itemID := existingOrder.Items()[0].ID()

	cmd, err := commands.NewChangeOrderItemQuantityCommand(existingOrder.ID(), itemID, decimal.NewFromInt(8))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()
	productRepo.On("Get", ctx, sellerProduct.ID()).Return(sellerProduct, nil).Once()

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderItemQuantityCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.True(t, existingOrder.Items()[0].Quantity().Equal(decimal.NewFromInt(2)))
	uow.AssertExpectations(t)
}

func TestChangeOrderItemQuantityCommandHandler_Handle_ConfirmedOrderRejected(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 2)
	itemID := existingOrder.Items()[0].ID()
	require.NoError(t, existingOrder.Confirm(time.Now().UTC()))

	cmd, err := commands.NewChangeOrderItemQuantityCommand(existingOrder.ID(), itemID, decimal.NewFromInt(3))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()
	productRepo.On("Get", ctx, sellerProduct.ID()).Return(sellerProduct, nil).Once()

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderItemQuantityCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertExpectations(t)
}
