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

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	employeeID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, buyerID, employeeID, productID, decimal.NewFromInt(5), "urgent")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, buyerID, cmd.BuyerID())
	assert.Equal(t, employeeID, cmd.EmployeeID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.True(t, cmd.Quantity().Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "urgent", cmd.Comments())
}

func TestNewCreateOrderCommand_EmptyCommentsAllowed(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		decimal.NewFromInt(1), "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Comments())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		decimal.NewFromInt(1), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidBuyerID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
		decimal.NewFromInt(1), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_NonPositiveQuantity(t *testing.T) {
	for _, quantity := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			quantity, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
