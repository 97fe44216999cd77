package commands

import (
	"context"
	"log/slog"
	"time"

	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/core/domain/services"
)

// ConfirmOrMoreResult holds either the next choices or, after finishing, the receipt.
type ConfirmOrMoreResult struct {
	Choices []Choice
	Receipt *services.Receipt
}

// ConfirmOrMoreCommandHandler closes the add-another-item loop.
// Finalizing needs exactly one Pending order: none is ErrOrderNotFound and
// more than one is ErrMultiplePendingOrdersDetected; both are logged.
type ConfirmOrMoreCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewConfirmOrMoreCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ConfirmOrMoreCommandHandler {
	return ConfirmOrMoreCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "confirm_or_more"),
	}
}

func (h ConfirmOrMoreCommandHandler) Handle(ctx context.Context, cmd ConfirmOrMoreCommand) (ConfirmOrMoreResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmOrMoreResult{}, err
	}
	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmOrMoreResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	conv, err := loadConversation(ctx, uow.ConversationRepository(), cmd.customer, now)
	if err != nil {
		return ConfirmOrMoreResult{}, err
	}
	if err = conv.Expect(conversation.ConfirmOrMore); err != nil {
		return ConfirmOrMoreResult{}, unexpectedStep(err)
	}

	var result ConfirmOrMoreResult
	if cmd.More() {
		pending, pendingErr := customerPendingOrder(ctx, uow.OrderRepository(), conv.CustomerName(), h.logger)
		if pendingErr != nil {
			return ConfirmOrMoreResult{}, pendingErr
		}
		items, itemsErr := uow.MenuRepository().GetAll(ctx)
		if itemsErr != nil {
			return ConfirmOrMoreResult{}, itemsErr
		}

		result.Choices = selectableItems(items, pending)
		if len(result.Choices) == 0 {
			return ConfirmOrMoreResult{}, ErrNoItemsAvailable
		}

		conv.StartSelecting(now)
		if err = uow.ConversationRepository().Save(ctx, conv); err != nil {
			return ConfirmOrMoreResult{}, err
		}
	} else {
		receipt, finalizeErr := finalizeOrder(ctx, uow, conv, now, h.logger)
		if finalizeErr != nil {
			return ConfirmOrMoreResult{}, finalizeErr
		}
		result.Receipt = &receipt
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmOrMoreResult{}, err
	}

	return result, nil
}
