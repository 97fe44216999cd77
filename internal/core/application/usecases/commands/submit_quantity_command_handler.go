package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/menu"
	"buttery/internal/core/domain/model/order"
	"buttery/internal/core/domain/services"
)

// SubmitQuantityResult describes the line that was written. Receipt is set when
// the line covered the last unselected item and the order was finalized.
type SubmitQuantityResult struct {
	OrderID  kernel.ID
	Item     Choice
	Quantity int
	Receipt  *services.Receipt
}

func (r SubmitQuantityResult) Finalized() bool {
	return r.Receipt != nil
}

// SubmitQuantityCommandHandler reserves stock for the selected item and writes
// the order line in the same transaction.
//
// Outcomes:
//   - text is not a positive integer: ErrInvalidInput, nothing changes
//   - not enough stock: menu.ErrInsufficientStock, the conversation goes back
//     to item selection and that step change is committed
//   - otherwise the line is merged into the Pending order (created on first
//     use) and the flow asks whether to add more, or finalizes right away when
//     every menu item is already on the order
type SubmitQuantityCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewSubmitQuantityCommandHandler(uowFactory UoWFactory, logger *slog.Logger) SubmitQuantityCommandHandler {
	return SubmitQuantityCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "submit_quantity"),
	}
}

func (h SubmitQuantityCommandHandler) Handle(ctx context.Context, cmd SubmitQuantityCommand) (SubmitQuantityResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitQuantityResult{}, err
	}
	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SubmitQuantityResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	orderRepo := uow.OrderRepository()
	convRepo := uow.ConversationRepository()

	conv, err := loadConversation(ctx, convRepo, cmd.customer, now)
	if err != nil {
		return SubmitQuantityResult{}, err
	}
	if err = conv.Expect(conversation.SelectingQuantity); err != nil {
		return SubmitQuantityResult{}, unexpectedStep(err)
	}

	qty, err := kernel.ParseQuantity(cmd.Text())
	if err != nil {
		return SubmitQuantityResult{}, fmt.Errorf("%w: quantity must be a positive whole number: %w", ErrInvalidInput, err)
	}

	item, err := menuRepo.Get(ctx, conv.SelectedItem())
	if err != nil {
		return SubmitQuantityResult{}, err
	}

	pending, err := customerPendingOrder(ctx, orderRepo, conv.CustomerName(), h.logger)
	if err != nil {
		return SubmitQuantityResult{}, err
	}

	if err = item.Reserve(qty); err != nil {
		if !errors.Is(err, menu.ErrInsufficientStock) {
			return SubmitQuantityResult{}, err
		}
		h.logger.Warn("not enough stock", "customer", conv.CustomerName(), "item", item.Name(),
			"requested", qty.Int(), "available", item.Quantity())

		conv.StartSelecting(now)
		if saveErr := convRepo.Save(ctx, conv); saveErr != nil {
			return SubmitQuantityResult{}, saveErr
		}
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return SubmitQuantityResult{}, commitErr
		}
		return SubmitQuantityResult{}, err
	}
	if err = menuRepo.Update(ctx, item); err != nil {
		return SubmitQuantityResult{}, err
	}

	if pending == nil {
		if pending, err = order.NewOrder(conv.CustomerName(), conv.ChatID(), now); err != nil {
			return SubmitQuantityResult{}, err
		}
		if err = pending.AddLine(item.ID(), qty); err != nil {
			return SubmitQuantityResult{}, err
		}
		err = orderRepo.Add(ctx, pending)
	} else {
		if err = pending.AddLine(item.ID(), qty); err != nil {
			return SubmitQuantityResult{}, err
		}
		err = orderRepo.Update(ctx, pending)
	}
	if err != nil {
		return SubmitQuantityResult{}, err
	}

	result := SubmitQuantityResult{
		OrderID:  pending.ID(),
		Item:     newChoice(item),
		Quantity: lineQuantity(pending, item.ID()),
	}

	items, err := menuRepo.GetAll(ctx)
	if err != nil {
		return SubmitQuantityResult{}, err
	}

	if len(selectableItems(items, pending)) == 0 {
		receipt, finalizeErr := finalizeOrder(ctx, uow, conv, now, h.logger)
		if finalizeErr != nil {
			return SubmitQuantityResult{}, finalizeErr
		}
		result.Receipt = &receipt
	} else {
		if err = conv.AwaitConfirmation(pending.ID(), now); err != nil {
			return SubmitQuantityResult{}, err
		}
		if err = convRepo.Save(ctx, conv); err != nil {
			return SubmitQuantityResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitQuantityResult{}, err
	}

	return result, nil
}

func lineQuantity(o *order.Order, itemID kernel.ID) int {
	for _, l := range o.Lines() {
		if l.ItemID().IsEqual(itemID) {
			return l.Quantity().Int()
		}
	}
	return 0
}
