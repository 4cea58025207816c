package commands_test

import (
	"testing"
	"time"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveOrderItemCommandHandler_Handle_RemovesLineAndRecomputesTotal(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	keptProduct := newTestProduct(t, seller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, keptProduct, 2)

	removedItem, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(3), decimal.NewFromInt(5))
	require.NoError(t, err)
	require.NoError(t, existingOrder.AddItem(removedItem))

	cmd, err := commands.NewRemoveOrderItemCommand(existingOrder.ID(), removedItem.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()
	orderRepo.On("Update", ctx, existingOrder).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, updated.Items(), 1)
	expectedTotal := keptProduct.Price().Mul(decimal.NewFromInt(2))
	assert.True(t, updated.TotalAmount().Equal(expectedTotal))
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestRemoveOrderItemCommandHandler_Handle_RejectsConfirmedOrder(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	p := newTestProduct(t, seller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, p, 2)
	itemID := existingOrder.Items()[0].ID()
	require.NoError(t, existingOrder.Confirm(time.Now().UTC()))

	cmd, err := commands.NewRemoveOrderItemCommand(existingOrder.ID(), itemID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Len(t, existingOrder.Items(), 1)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestRemoveOrderItemCommandHandler_Handle_MissingItem(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	p := newTestProduct(t, seller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, p, 2)

	cmd, err := commands.NewRemoveOrderItemCommand(existingOrder.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Len(t, existingOrder.Items(), 1)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}
