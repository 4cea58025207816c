package commands_test

import (
	"testing"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOrderItemCommandHandler_Handle_SnapshotsPrice(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	firstProduct := newTestProduct(t, seller.ID(), 10)
	secondProduct := newTestProduct(t, seller.ID(), 20)
	existingOrder := newTestOrderWithItem(t, firstProduct, 2)

	cmd, err := commands.NewAddOrderItemCommand(existingOrder.ID(), secondProduct.ID(), decimal.NewFromInt(3))
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
	productRepo.On("Get", ctx, secondProduct.ID()).Return(secondProduct, nil).Once()
	orderRepo.On("Update", ctx, existingOrder).Return(nil).Once()

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, updated.Items(), 2)
	added := updated.Items()[1]
	assert.True(t, added.Price().Equal(secondProduct.Price()))
	expectedTotal := firstProduct.Price().Mul(decimal.NewFromInt(2)).
		Add(secondProduct.Price().Mul(decimal.NewFromInt(3)))
	assert.True(t, updated.TotalAmount().Equal(expectedTotal))
	uow.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_ForeignSellerProduct(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	otherSeller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 10)
	foreignProduct := newTestProduct(t, otherSeller.ID(), 10)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 2)

	cmd, err := commands.NewAddOrderItemCommand(existingOrder.ID(), foreignProduct.ID(), decimal.NewFromInt(1))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()
	productRepo.On("Get", ctx, foreignProduct.ID()).Return(foreignProduct, nil).Once()

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Len(t, existingOrder.Items(), 1)
	uow.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_NotEnoughStock(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 10)
	scarceProduct := newTestProduct(t, seller.ID(), 2)
	existingOrder := newTestOrderWithItem(t, sellerProduct, 2)

	cmd, err := commands.NewAddOrderItemCommand(existingOrder.ID(), scarceProduct.ID(), decimal.NewFromInt(5))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, existingOrder.ID()).Return(existingOrder, nil).Once()
	productRepo.On("Get", ctx, scarceProduct.ID()).Return(scarceProduct, nil).Once()

	factory := new(MockOrderProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	uow.AssertExpectations(t)
}
