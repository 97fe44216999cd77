package commands_test

import (
	"testing"

	"buttery/internal/core/application/usecases/commands"
	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectItemCommand(t *testing.T) {
	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := commands.NewSelectItemCommand("", 0, " ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "item name")
	})

	t.Run("should keep trimmed item name", func(t *testing.T) {
		cmd, err := commands.NewSelectItemCommand("alice", aliceChat, " Egg (for noodles) ")
		require.NoError(t, err)
		assert.Equal(t, "Egg (for noodles)", cmd.ItemName())
	})
}

func TestSelectItemCommandHandler_Handle(t *testing.T) {
	t.Run("should remember the item and ask for a quantity", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.startOrder(t.Context(), "alice", aliceChat)
		require.NoError(t, err)

		choice, err := f.selectItem(t.Context(), "alice", aliceChat, "Mandarin Fresh Cream Roll")

		require.NoError(t, err)
		assert.Equal(t, creamRoll, choice.ItemID.Int64())
		assert.Equal(t, "2.50", choice.Price.String())
		assert.Equal(t, conversation.SelectingQuantity, f.step(t, "alice"))
	})

	t.Run("should reject input before an order was started", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.selectItem(t.Context(), "alice", aliceChat, "Chili Oil Dumplings")

		require.ErrorIs(t, err, commands.ErrUnexpectedInput)
		require.ErrorIs(t, err, commands.ErrInvalidInput)
		require.ErrorIs(t, err, conversation.ErrUnexpectedStep)
	})

	t.Run("should re-prompt for unknown items", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.startOrder(t.Context(), "alice", aliceChat)
		require.NoError(t, err)

		_, err = f.selectItem(t.Context(), "alice", aliceChat, "Bubble Tea")

		require.ErrorIs(t, err, commands.ErrInvalidInput)
		assert.Equal(t, conversation.SelectingItem, f.step(t, "alice"))
	})
}
