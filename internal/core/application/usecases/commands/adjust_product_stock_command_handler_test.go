package commands_test

import (
	"testing"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustProductStockCommandHandler_Handle_Restock(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 3)

	cmd, err := commands.NewAdjustProductStockCommand(sellerProduct.ID(), decimal.NewFromInt(10))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	productRepo.On("GetForUpdate", ctx, sellerProduct.ID()).Return(sellerProduct, nil).Once()
	productRepo.On("Update", ctx, sellerProduct).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdjustProductStockCommandHandler(factory)
	adjusted, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, adjusted.Quantity().Equal(decimal.NewFromInt(13)))
	uow.AssertExpectations(t)
}

func TestAdjustProductStockCommandHandler_Handle_WriteOffBeyondAvailable(t *testing.T) {
	ctx := t.Context()

	seller := newTestOrganization(t)
	sellerProduct := newTestProduct(t, seller.ID(), 3)

	cmd, err := commands.NewAdjustProductStockCommand(sellerProduct.ID(), decimal.NewFromInt(-5))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	productRepo.On("GetForUpdate", ctx, sellerProduct.ID()).Return(sellerProduct, nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdjustProductStockCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.True(t, sellerProduct.Quantity().Equal(decimal.NewFromInt(3)))
	uow.AssertExpectations(t)
}

func TestNewAdjustProductStockCommand_ZeroDelta(t *testing.T) {
	_, err := commands.NewAdjustProductStockCommand(kernel.NewUUID(), decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
