package menu_test

import (
	"testing"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/menu"
	"buttery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDumplings(t *testing.T, stock int) *menu.Item {
	t.Helper()
	item, err := menu.RestoreItem(kernel.MustNewID(1), "Chili Oil Dumplings", stock, kernel.MustMoney("3.00"))
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should create item without id", func(t *testing.T) {
		item, err := menu.NewItem("Scallion Oil Noodles", 15, kernel.MustMoney("2"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsZero())
		assert.Equal(t, "Scallion Oil Noodles", item.Name())
		assert.Equal(t, 15, item.Quantity())
		assert.Equal(t, "2.00", item.Price().String())
	})

	t.Run("should fail with empty name and negative stock", func(t *testing.T) {
		item, err := menu.NewItem("  ", -1, kernel.ZeroMoney())

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should assign id once", func(t *testing.T) {
		item, err := menu.NewItem("Egg (for noodles)", 15, kernel.MustMoney("0.5"))
		require.NoError(t, err)

		require.NoError(t, item.AssignID(kernel.MustNewID(3)))
		require.ErrorIs(t, item.AssignID(kernel.MustNewID(4)), menu.ErrIDIsAlreadyAssigned)
		assert.Equal(t, int64(3), item.ID().Int64())
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var item *menu.Item
		require.ErrorIs(t, item.Validate(), menu.ErrItemIsNotConstructed)
	})
}

func TestItem_Reserve(t *testing.T) {
	t.Run("should never reserve more than the initial stock", func(t *testing.T) {
		item := newDumplings(t, 5)
		reserved := 0

		for _, qty := range []int{2, 2, 2, 1, 3} {
			if err := item.Reserve(kernel.MustQuantity(qty)); err == nil {
				reserved += qty
			} else {
				require.ErrorIs(t, err, menu.ErrInsufficientStock)
			}
		}

		assert.Equal(t, 5, reserved)
		assert.Equal(t, 0, item.Quantity())
	})

	t.Run("should leave stock unchanged on shortage", func(t *testing.T) {
		item := newDumplings(t, 1)

		err := item.Reserve(kernel.MustQuantity(2))

		require.ErrorIs(t, err, menu.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "Chili Oil Dumplings has 1 left")
		assert.Equal(t, 1, item.Quantity())
	})

	t.Run("should release reserved portions", func(t *testing.T) {
		item := newDumplings(t, 3)
		require.NoError(t, item.Reserve(kernel.MustQuantity(3)))
		assert.False(t, item.InStock())

		require.NoError(t, item.Release(kernel.MustQuantity(2)))
		assert.Equal(t, 2, item.Quantity())
	})
}

func TestItem_AdminStock(t *testing.T) {
	t.Run("should set stock on restock", func(t *testing.T) {
		item := newDumplings(t, 3)
		require.NoError(t, item.Restock(0))
		assert.Equal(t, 0, item.Quantity())
		require.NoError(t, item.Restock(40))
		assert.Equal(t, 40, item.Quantity())
	})

	t.Run("should reject negative restock", func(t *testing.T) {
		item := newDumplings(t, 3)
		require.ErrorIs(t, item.Restock(-1), errs.ErrValueIsInvalid)
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("should clamp reduce at zero", func(t *testing.T) {
		item := newDumplings(t, 3)
		require.NoError(t, item.Reduce(2))
		assert.Equal(t, 1, item.Quantity())
		require.NoError(t, item.Reduce(10))
		assert.Equal(t, 0, item.Quantity())
		require.ErrorIs(t, item.Reduce(-1), errs.ErrValueIsInvalid)
	})
}
