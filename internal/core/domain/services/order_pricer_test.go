package services_test

import (
	"testing"
	"time"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/menu"
	"buttery/internal/core/domain/model/order"
	"buttery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id int64, name, price string) *menu.Item {
	t.Helper()
	item, err := menu.RestoreItem(kernel.MustNewID(id), name, 10, kernel.MustMoney(price))
	require.NoError(t, err)
	return item
}

func TestOrderPricer_Price(t *testing.T) {
	dumplings := mustItem(t, 1, "Chili Oil Dumplings", "3.00")
	roll := mustItem(t, 4, "Mandarin Fresh Cream Roll", "2.50")

	t.Run("should total exactly with decimal prices", func(t *testing.T) {
		o, _ := order.NewOrder("alice", 1001, time.Now())
		require.NoError(t, o.AddLine(dumplings.ID(), kernel.MustQuantity(2)))
		require.NoError(t, o.AddLine(roll.ID(), kernel.MustQuantity(1)))

		receipt, err := services.NewOrderPricer().Price(o, []*menu.Item{dumplings, roll})

		require.NoError(t, err)
		assert.Equal(t, "8.50", receipt.Total.String())
		assert.True(t, receipt.Total.IsEqual(kernel.MustMoney("8.5")))
		assert.Equal(t, "alice", receipt.Customer)
		require.Len(t, receipt.Lines, 2)
		assert.Equal(t, "Chili Oil Dumplings", receipt.Lines[0].Name)
		assert.Equal(t, "6.00", receipt.Lines[0].Subtotal.String())
		assert.Equal(t, "2.50", receipt.Lines[1].Subtotal.String())
	})

	t.Run("should use price at pricing time", func(t *testing.T) {
		o, _ := order.NewOrder("alice", 1001, time.Now())
		require.NoError(t, o.AddLine(roll.ID(), kernel.MustQuantity(3)))

		cheaper := mustItem(t, 4, "Mandarin Fresh Cream Roll", "2.00")
		receipt, err := services.NewOrderPricer().Price(o, []*menu.Item{cheaper})

		require.NoError(t, err)
		assert.Equal(t, "6.00", receipt.Total.String())
	})

	t.Run("should fail when an item is missing", func(t *testing.T) {
		o, _ := order.NewOrder("alice", 1001, time.Now())
		require.NoError(t, o.AddLine(kernel.MustNewID(99), kernel.MustQuantity(1)))

		_, err := services.NewOrderPricer().Price(o, []*menu.Item{dumplings})
		require.ErrorIs(t, err, services.ErrMenuItemMissing)
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		_, err := services.NewOrderPricer().Price(&order.Order{}, nil)
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
