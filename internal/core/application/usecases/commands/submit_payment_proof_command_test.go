package commands_test

import (
	"errors"
	"testing"

	"buttery/internal/core/application/usecases/commands"
	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func finalizedOrder(t *testing.T, f *fixture) commands.SubmitQuantityResult {
	t.Helper()
	_, err := f.startOrder(t.Context(), "alice", aliceChat)
	require.NoError(t, err)
	picked := f.pick(t, "alice", aliceChat, "Chili Oil Dumplings", "1")
	_, err = f.confirmOrMore(t.Context(), "alice", aliceChat, false)
	require.NoError(t, err)
	return picked
}

func TestSubmitPaymentProofCommandHandler_Handle(t *testing.T) {
	t.Run("should forward the proof to every admin chat", func(t *testing.T) {
		f := newFixture(t)
		picked := finalizedOrder(t, f)

		for _, admin := range []int64{adminChatA, adminChatB} {
			f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
				return n.Event == ports.EventPaymentProofReceived &&
					n.RecipientChatID == admin &&
					n.OrderID.IsEqual(picked.OrderID) &&
					n.Customer == "alice" &&
					n.Attachment == "file-123" &&
					n.Text == "Payment from alice for order "+picked.OrderID.String()
			})).Return(nil).Once()
		}

		h := commands.NewSubmitPaymentProofCommandHandler(f.uow(), f.notifier, []int64{adminChatA, adminChatB}, f.logger)
		cmd, err := commands.NewSubmitPaymentProofCommand("alice", aliceChat, "file-123")
		require.NoError(t, err)

		result, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Forwarded)
		assert.True(t, result.OrderID.IsEqual(picked.OrderID))
		assert.Equal(t, conversation.Idle, f.step(t, "alice"))
		f.notifier.AssertExpectations(t)
	})

	t.Run("should re-prompt without an attachment", func(t *testing.T) {
		f := newFixture(t)
		finalizedOrder(t, f)

		h := commands.NewSubmitPaymentProofCommandHandler(f.uow(), f.notifier, []int64{adminChatA}, f.logger)
		cmd, err := commands.NewSubmitPaymentProofCommand("alice", aliceChat, "  ")
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrInvalidInput)
		assert.Equal(t, conversation.AwaitingPaymentProof, f.step(t, "alice"))
		f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})

	t.Run("should log failed deliveries and carry on", func(t *testing.T) {
		f := newFixture(t)
		finalizedOrder(t, f)
		f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
			return n.RecipientChatID == adminChatA
		})).Return(errors.New("broker down")).Once()
		f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
			return n.RecipientChatID == adminChatB
		})).Return(nil).Once()

		h := commands.NewSubmitPaymentProofCommandHandler(f.uow(), f.notifier, []int64{adminChatA, adminChatB}, f.logger)
		cmd, err := commands.NewSubmitPaymentProofCommand("alice", aliceChat, "file-123")
		require.NoError(t, err)

		result, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Forwarded)
		assert.Equal(t, conversation.Idle, f.step(t, "alice"))
	})

	t.Run("should reject a proof nobody asked for", func(t *testing.T) {
		f := newFixture(t)
		h := commands.NewSubmitPaymentProofCommandHandler(f.uow(), f.notifier, []int64{adminChatA}, f.logger)
		cmd, err := commands.NewSubmitPaymentProofCommand("alice", aliceChat, "file-123")
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrUnexpectedInput)
	})
}
