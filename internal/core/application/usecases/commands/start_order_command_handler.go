package commands

import (
	"context"
	"fmt"
	"time"

	"buttery/internal/core/domain/model/order"
)

// StartOrderResult holds the items offered for the first selection.
type StartOrderResult struct {
	Choices []Choice
}

// StartOrderCommandHandler opens the ordering flow for a customer.
// A customer with a Pending order gets ErrDuplicatePendingOrder, one with an
// order that staff still work on gets ErrActiveOrderExists. Collected and
// cancelled orders do not block a new one. Nothing is written on rejection.
type StartOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewStartOrderCommandHandler(uowFactory UoWFactory) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) (StartOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return StartOrderResult{}, err
	}
	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StartOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllByCustomer(ctx, cmd.CustomerName())
	if err != nil {
		return StartOrderResult{}, err
	}
	for _, o := range orders {
		switch {
		case o.Status() == order.Pending:
			return StartOrderResult{}, fmt.Errorf("%w: order %s", ErrDuplicatePendingOrder, o.ID())
		case o.Status().IsActive():
			return StartOrderResult{}, fmt.Errorf("%w: order %s is %s", ErrActiveOrderExists, o.ID(), o.Status())
		}
	}

	items, err := uow.MenuRepository().GetAll(ctx)
	if err != nil {
		return StartOrderResult{}, err
	}
	choices := selectableItems(items, nil)
	if len(choices) == 0 {
		return StartOrderResult{}, ErrNoItemsAvailable
	}

	conv, err := loadConversation(ctx, uow.ConversationRepository(), cmd.customer, now)
	if err != nil {
		return StartOrderResult{}, err
	}
	conv.StartSelecting(now)
	if err = uow.ConversationRepository().Save(ctx, conv); err != nil {
		return StartOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StartOrderResult{}, err
	}

	return StartOrderResult{Choices: choices}, nil
}
