package document_test

import (
	"testing"
	"time"

	"wholesale/internal/core/domain/model/document"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocumentItem(t *testing.T) *document.Item {
	t.Helper()
	item, err := document.NewItem(
		kernel.NewUUID(), kernel.NewUUID(),
		decimal.NewFromInt(2), decimal.NewFromInt(5), decimal.NewFromInt(10))
	require.NoError(t, err)
	return item
}

func TestNewDocument(t *testing.T) {
	id := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	employeeID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	now := time.Now()

	t.Run("should create document with all fields", func(t *testing.T) {
		items := []*document.Item{newTestDocumentItem(t)}

		doc, err := document.NewDocument(
			id, "7", sellerID, buyerID, employeeID, orderID,
			decimal.NewFromInt(10), items, now)

		require.NoError(t, err)
		require.NoError(t, doc.Validate())
		assert.True(t, doc.ID().IsEqual(id))
		assert.Equal(t, "7", doc.DocumentNumber())
		assert.Equal(t, now, doc.DocumentDate())
		assert.True(t, doc.SellerID().IsEqual(sellerID))
		assert.True(t, doc.BuyerID().IsEqual(buyerID))
		assert.True(t, doc.EmployeeID().IsEqual(employeeID))
		assert.True(t, doc.OrderID().IsEqual(orderID))
		assert.True(t, doc.TotalAmount().Equal(decimal.NewFromInt(10)))
		assert.Len(t, doc.Items(), 1)
	})

	t.Run("should fail with empty document number", func(t *testing.T) {
		_, err := document.NewDocument(
			id, "", sellerID, buyerID, employeeID, orderID, decimal.Zero, nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "documentNumber")
	})

	t.Run("should fail with missing order reference", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := document.NewDocument(
			id, "7", sellerID, buyerID, employeeID, invalidID, decimal.Zero, nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "orderID")
	})

	t.Run("should fail with non-constructed item", func(t *testing.T) {
		items := []*document.Item{{}}

		_, err := document.NewDocument(
			id, "7", sellerID, buyerID, employeeID, orderID, decimal.Zero, items, now)

		require.ErrorIs(t, err, document.ErrItemIsNotConstructed)
	})
}

func TestNewDocumentItem(t *testing.T) {
	t.Run("should keep the copied amount as-is", func(t *testing.T) {
		// The amount is an exact copy of the order line, not recomputed.
		item, err := document.NewItem(
			kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(3), decimal.NewFromFloat(2.5), decimal.NewFromFloat(7.5))

		require.NoError(t, err)
		assert.True(t, item.Amount().Equal(decimal.NewFromFloat(7.5)))
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := document.NewItem(
			kernel.NewUUID(), kernel.NewUUID(),
			decimal.Zero, decimal.NewFromInt(1), decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := document.NewItem(
			kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(1), decimal.NewFromInt(-1), decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDocument_Validate(t *testing.T) {
	t.Run("should reject non-constructed document", func(t *testing.T) {
		var doc document.Document
		require.ErrorIs(t, doc.Validate(), document.ErrDocumentIsNotConstructed)
	})

	t.Run("should reject nil document", func(t *testing.T) {
		var doc *document.Document
		require.ErrorIs(t, doc.Validate(), document.ErrDocumentIsNotConstructed)
	})
}
