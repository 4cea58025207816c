package product_test

import (
	"testing"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/product"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, quantity int64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		kernel.NewUUID(), kernel.NewUUID(), "bolt M6",
		decimal.NewFromFloat(1.5), decimal.NewFromInt(quantity))
	require.NoError(t, err)
	return p
}

// conservation asserts that quantity + reserved equals the expected sum.
// Reserve and Release move units between buckets and must keep it constant.
func conservation(t *testing.T, p *product.Product, expected int64) {
	t.Helper()
	total := p.Quantity().Add(p.Reserved())
	assert.True(t, total.Equal(decimal.NewFromInt(expected)),
		"quantity+reserved = %s, want %d", total, expected)
}

func TestNewProduct(t *testing.T) {
	t.Run("should create product with all stock available", func(t *testing.T) {
		id := kernel.NewUUID()
		organizationID := kernel.NewUUID()

		p, err := product.NewProduct(id, organizationID, "bolt M6",
			decimal.NewFromFloat(1.5), decimal.NewFromInt(10))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.OrganizationID().IsEqual(organizationID))
		assert.Equal(t, "bolt M6", p.Name())
		assert.Empty(t, p.Description())
		assert.True(t, p.Quantity().Equal(decimal.NewFromInt(10)))
		assert.True(t, p.Reserved().IsZero())
	})

	t.Run("should allow zero initial stock", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "bolt M6",
			decimal.NewFromInt(1), decimal.Zero)

		require.NoError(t, err)
		assert.True(t, p.Quantity().IsZero())
	})

	t.Run("should reject negative initial stock", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "bolt M6",
			decimal.NewFromInt(1), decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "bolt M6",
			decimal.NewFromInt(-1), decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "",
			decimal.NewFromInt(1), decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject missing organization", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := product.NewProduct(kernel.NewUUID(), invalidID, "bolt M6",
			decimal.NewFromInt(1), decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "organizationID")
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("should move units between buckets", func(t *testing.T) {
		p := newTestProduct(t, 10)

		require.NoError(t, p.Reserve(decimal.NewFromInt(4)))

		assert.True(t, p.Quantity().Equal(decimal.NewFromInt(6)))
		assert.True(t, p.Reserved().Equal(decimal.NewFromInt(4)))
		conservation(t, p, 10)
	})

	t.Run("should allow reserving the entire stock", func(t *testing.T) {
		p := newTestProduct(t, 10)

		require.NoError(t, p.Reserve(decimal.NewFromInt(10)))

		assert.True(t, p.Quantity().IsZero())
		conservation(t, p, 10)
	})

	t.Run("should fail when request exceeds available stock", func(t *testing.T) {
		p := newTestProduct(t, 3)

		err := p.Reserve(decimal.NewFromInt(4))

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.True(t, p.Quantity().Equal(decimal.NewFromInt(3)))
		assert.True(t, p.Reserved().IsZero())
	})

	t.Run("reserved units do not count as available", func(t *testing.T) {
		p := newTestProduct(t, 10)
		require.NoError(t, p.Reserve(decimal.NewFromInt(8)))

		err := p.Reserve(decimal.NewFromInt(3))

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		conservation(t, p, 10)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		p := newTestProduct(t, 10)

		require.ErrorIs(t, p.Reserve(decimal.Zero), errs.ErrValueIsInvalid)
		require.ErrorIs(t, p.Reserve(decimal.NewFromInt(-1)), errs.ErrValueIsInvalid)
	})
}

func TestProduct_Release(t *testing.T) {
	t.Run("should return units to the available bucket", func(t *testing.T) {
		p := newTestProduct(t, 10)
		require.NoError(t, p.Reserve(decimal.NewFromInt(6)))

		require.NoError(t, p.Release(decimal.NewFromInt(6)))

		assert.True(t, p.Quantity().Equal(decimal.NewFromInt(10)))
		assert.True(t, p.Reserved().IsZero())
		conservation(t, p, 10)
	})

	t.Run("should reject releasing more than reserved", func(t *testing.T) {
		p := newTestProduct(t, 10)
		require.NoError(t, p.Reserve(decimal.NewFromInt(2)))

		err := p.Release(decimal.NewFromInt(3))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, p.Reserved().Equal(decimal.NewFromInt(2)))
		conservation(t, p, 10)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		p := newTestProduct(t, 10)

		require.ErrorIs(t, p.Release(decimal.Zero), errs.ErrValueIsInvalid)
	})
}

func TestProduct_RestockAndRemoveStock(t *testing.T) {
	t.Run("restock adds to the available bucket", func(t *testing.T) {
		p := newTestProduct(t, 3)

		require.NoError(t, p.Restock(decimal.NewFromInt(7)))

		assert.True(t, p.Quantity().Equal(decimal.NewFromInt(10)))
	})

	t.Run("remove stock takes from the available bucket", func(t *testing.T) {
		p := newTestProduct(t, 10)

		require.NoError(t, p.RemoveStock(decimal.NewFromInt(4)))

		assert.True(t, p.Quantity().Equal(decimal.NewFromInt(6)))
	})

	t.Run("remove stock cannot touch reserved units", func(t *testing.T) {
		p := newTestProduct(t, 10)
		require.NoError(t, p.Reserve(decimal.NewFromInt(8)))

		err := p.RemoveStock(decimal.NewFromInt(3))

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.True(t, p.Reserved().Equal(decimal.NewFromInt(8)))
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		p := newTestProduct(t, 10)

		require.ErrorIs(t, p.Restock(decimal.Zero), errs.ErrValueIsInvalid)
		require.ErrorIs(t, p.RemoveStock(decimal.Zero), errs.ErrValueIsInvalid)
	})
}

func TestProduct_ChangePriceAndDetails(t *testing.T) {
	t.Run("should change price", func(t *testing.T) {
		p := newTestProduct(t, 1)

		require.NoError(t, p.ChangePrice(decimal.NewFromInt(9)))

		assert.True(t, p.Price().Equal(decimal.NewFromInt(9)))
	})

	t.Run("should reject negative price", func(t *testing.T) {
		p := newTestProduct(t, 1)

		require.ErrorIs(t, p.ChangePrice(decimal.NewFromInt(-1)), errs.ErrValueIsInvalid)
	})

	t.Run("should update details", func(t *testing.T) {
		p := newTestProduct(t, 1)

		require.NoError(t, p.UpdateDetails("nut M6", "zinc plated"))

		assert.Equal(t, "nut M6", p.Name())
		assert.Equal(t, "zinc plated", p.Description())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		p := newTestProduct(t, 1)

		require.ErrorIs(t, p.UpdateDetails("", "desc"), errs.ErrValueIsRequired)
	})
}

func TestProduct_EnsureDeletable(t *testing.T) {
	t.Run("empty product is deletable", func(t *testing.T) {
		p := newTestProduct(t, 0)

		require.NoError(t, p.EnsureDeletable())
	})

	t.Run("product with available stock is not deletable", func(t *testing.T) {
		p := newTestProduct(t, 3)

		require.ErrorIs(t, p.EnsureDeletable(), errs.ErrConstraintViolation)
	})

	t.Run("product with only reserved stock is not deletable", func(t *testing.T) {
		p := newTestProduct(t, 3)
		require.NoError(t, p.Reserve(decimal.NewFromInt(3)))

		require.ErrorIs(t, p.EnsureDeletable(), errs.ErrConstraintViolation)
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("should restore both buckets and description", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.RestoreProduct(id, kernel.NewUUID(), "bolt M6", "zinc plated",
			decimal.NewFromInt(2), decimal.NewFromInt(6), decimal.NewFromInt(4))

		require.NoError(t, err)
		assert.Equal(t, "zinc plated", p.Description())
		assert.True(t, p.Quantity().Equal(decimal.NewFromInt(6)))
		assert.True(t, p.Reserved().Equal(decimal.NewFromInt(4)))
	})

	t.Run("should reject negative reserved", func(t *testing.T) {
		_, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(), "bolt M6", "",
			decimal.NewFromInt(2), decimal.NewFromInt(6), decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("should reject non-constructed product", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})

	t.Run("should reject nil product", func(t *testing.T) {
		var p *product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}
