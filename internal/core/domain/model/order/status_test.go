package order_test

import (
	"fmt"
	"testing"

	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.New))
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.Paid))
		assert.Equal(t, 4, int(order.Shipped))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.New,
			order.Confirmed,
			order.Paid,
			order.Shipped,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(6), order.Status(100)} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				require.ErrorIs(t, status.Validate(), errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:     "Unknown",
		order.New:         "New",
		order.Confirmed:   "Confirmed",
		order.Paid:        "Paid",
		order.Shipped:     "Shipped",
		order.Cancelled:   "Cancelled",
		order.Status(100): "Unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status name", func(t *testing.T) {
		for _, status := range []order.Status{
			order.New, order.Confirmed, order.Paid, order.Shipped, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "new", "Delivered"} {
			_, err := order.StatusFromString(name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

// TestStatus_Transitions walks the whole edge table: every (source, operation)
// pair either yields the expected target status or an InvalidTransitionError.
func TestStatus_Transitions(t *testing.T) {
	type operation struct {
		name string
		call func(order.Status) (order.Status, error)
	}

	operations := []operation{
		{"Confirm", order.Status.Confirm},
		{"Pay", order.Status.Pay},
		{"Ship", order.Status.Ship},
		{"Cancel", order.Status.Cancel},
	}

	allowed := map[order.Status]map[string]order.Status{
		order.New:       {"Confirm": order.Confirmed, "Cancel": order.Cancelled},
		order.Confirmed: {"Pay": order.Paid, "Cancel": order.Cancelled},
		order.Paid:      {"Ship": order.Shipped, "Cancel": order.Cancelled},
		order.Shipped:   {},
		order.Cancelled: {},
	}

	for source, edges := range allowed {
		for _, op := range operations {
			t.Run(fmt.Sprintf("%s_%s", source.String(), op.name), func(t *testing.T) {
				target, err := op.call(source)

				if expected, ok := edges[op.name]; ok {
					require.NoError(t, err)
					assert.Equal(t, expected, target)
				} else {
					require.ErrorIs(t, err, errs.ErrInvalidTransition)
				}
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.New.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.Paid.IsTerminal())
	assert.True(t, order.Shipped.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_HoldsReservation(t *testing.T) {
	assert.False(t, order.New.HoldsReservation())
	assert.True(t, order.Confirmed.HoldsReservation())
	assert.True(t, order.Paid.HoldsReservation())
	assert.False(t, order.Shipped.HoldsReservation())
	assert.False(t, order.Cancelled.HoldsReservation())
}

func TestStatus_AllowsItemChanges(t *testing.T) {
	assert.True(t, order.New.AllowsItemChanges())
	assert.False(t, order.Confirmed.AllowsItemChanges())
	assert.False(t, order.Paid.AllowsItemChanges())
	assert.False(t, order.Shipped.AllowsItemChanges())
	assert.False(t, order.Cancelled.AllowsItemChanges())
}
