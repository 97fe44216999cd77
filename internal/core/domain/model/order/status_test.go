package order_test

import (
	"fmt"
	"testing"

	"buttery/internal/core/domain/model/order"
	"buttery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should keep Unknown as zero value", func(t *testing.T) {
		var s order.Status
		assert.Equal(t, order.Unknown, s)
		require.ErrorIs(t, s.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("should round trip persisted names", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())

				parsed, err := order.ParseStatus(status.String())
				require.NoError(t, err)
				assert.Equal(t, status, parsed)
			})
		}
	})

	t.Run("should store names used by archived data", func(t *testing.T) {
		assert.Equal(t, "AwaitingPayment", order.AwaitingPayment.String())
		assert.Equal(t, "OrderCollected", order.OrderCollected.String())
		assert.Equal(t, "Unknown", order.Status(99).String())
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "pending", "Shipped"} {
			_, err := order.ParseStatus(name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
		}
	})
}

func TestStatus_RestrictedTransitions(t *testing.T) {
	edges := map[order.Status][]order.Status{
		order.AwaitingPayment: {order.Processing, order.Cancelled},
		order.Processing:      {order.OrderReady},
		order.OrderReady:      {order.OrderCollected},
	}

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			want := false
			for _, e := range edges[from] {
				if e == to {
					want = true
				}
			}

			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				got, err := from.TransitionTo(to, true)
				if want {
					require.NoError(t, err)
					assert.Equal(t, to, got)
					return
				}
				require.ErrorIs(t, err, order.ErrInvalidTransition)
				assert.Equal(t, order.Unknown, got)
			})
		}
	}

	t.Run("should expose allowed transitions", func(t *testing.T) {
		assert.Equal(t, []order.Status{order.Processing, order.Cancelled}, order.AwaitingPayment.AllowedTransitions())
		assert.Empty(t, order.OrderCollected.AllowedTransitions())
		assert.Empty(t, order.Pending.AllowedTransitions())
	})
}

func TestStatus_UnrestrictedTransitions(t *testing.T) {
	t.Run("should allow any valid target", func(t *testing.T) {
		got, err := order.OrderCollected.TransitionTo(order.Processing, false)
		require.NoError(t, err)
		assert.Equal(t, order.Processing, got)
	})

	t.Run("should still reject invalid target", func(t *testing.T) {
		_, err := order.Processing.TransitionTo(order.Unknown, false)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Classification(t *testing.T) {
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.OrderCollected.IsTerminal())
	assert.False(t, order.OrderReady.IsTerminal())

	assert.True(t, order.AwaitingPayment.IsActive())
	assert.True(t, order.OrderReady.IsActive())
	assert.False(t, order.Pending.IsActive())
	assert.False(t, order.Cancelled.IsActive())
}
