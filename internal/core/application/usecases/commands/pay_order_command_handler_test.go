package commands_test

import (
	"testing"
	"time"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 4)
	require.NoError(t, existingOrder.Confirm(time.Now().UTC()))

	cmd, err := commands.NewPayOrderCommand(existingOrder.ID())
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

	h := commands.NewPayOrderCommandHandler(factory)
	paid, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Paid, paid.Status())
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestPayOrderCommandHandler_Handle_NotConfirmed(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 4)

	cmd, err := commands.NewPayOrderCommand(existingOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.New, existingOrder.Status())
	uow.AssertExpectations(t)
}
