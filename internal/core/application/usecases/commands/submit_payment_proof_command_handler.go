package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/ports"
)

// SubmitPaymentProofResult reports how many admin chats the proof went to.
type SubmitPaymentProofResult struct {
	OrderID   kernel.ID
	Forwarded int
}

// SubmitPaymentProofCommandHandler forwards the payment proof to every admin
// chat and ends the conversation. Forwarding starts only after the commit and
// failed deliveries are logged, not returned.
type SubmitPaymentProofCommandHandler struct {
	uowFactory   UoWFactory
	notifier     ports.Notifier
	adminChatIDs []int64
	logger       *slog.Logger
}

func NewSubmitPaymentProofCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	adminChatIDs []int64,
	logger *slog.Logger,
) SubmitPaymentProofCommandHandler {
	ids := make([]int64, len(adminChatIDs))
	copy(ids, adminChatIDs)

	return SubmitPaymentProofCommandHandler{
		uowFactory:   uowFactory,
		notifier:     notifier,
		adminChatIDs: ids,
		logger:       logger.With("component", "submit_payment_proof"),
	}
}

func (h SubmitPaymentProofCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitPaymentProofCommand,
) (SubmitPaymentProofResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitPaymentProofResult{}, err
	}
	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SubmitPaymentProofResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	conv, err := loadConversation(ctx, uow.ConversationRepository(), cmd.customer, now)
	if err != nil {
		return SubmitPaymentProofResult{}, err
	}
	if err = conv.Expect(conversation.AwaitingPaymentProof); err != nil {
		return SubmitPaymentProofResult{}, unexpectedStep(err)
	}
	if cmd.Attachment() == "" {
		return SubmitPaymentProofResult{}, fmt.Errorf("%w: please send the payment screenshot", ErrInvalidInput)
	}

	orderID := conv.OrderID()
	conv.Reset(now)
	if err = uow.ConversationRepository().Save(ctx, conv); err != nil {
		return SubmitPaymentProofResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitPaymentProofResult{}, err
	}

	result := SubmitPaymentProofResult{OrderID: orderID}
	for _, chatID := range h.adminChatIDs {
		n := ports.Notification{
			Event:           ports.EventPaymentProofReceived,
			RecipientChatID: chatID,
			OrderID:         orderID,
			Customer:        conv.CustomerName(),
			Text:            fmt.Sprintf("Payment from %s for order %s", conv.CustomerName(), orderID),
			Attachment:      cmd.Attachment(),
		}
		if notifyErr := h.notifier.Notify(ctx, n); notifyErr != nil {
			h.logger.Error("failed to forward payment proof", "admin_chat_id", chatID,
				"order_id", orderID.Int64(), "error", notifyErr)
			continue
		}
		result.Forwarded++
	}

	return result, nil
}
