package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/pkg/errs"
)

// SelectItemCommandHandler records the chosen item and asks for a quantity.
// Stock is not checked here; the reservation at quantity submission decides.
type SelectItemCommandHandler struct {
	uowFactory UoWFactory
}

func NewSelectItemCommandHandler(uowFactory UoWFactory) SelectItemCommandHandler {
	return SelectItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SelectItemCommandHandler) Handle(ctx context.Context, cmd SelectItemCommand) (Choice, error) {
	if err := cmd.Validate(); err != nil {
		return Choice{}, err
	}
	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Choice{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	conv, err := loadConversation(ctx, uow.ConversationRepository(), cmd.customer, now)
	if err != nil {
		return Choice{}, err
	}
	if err = conv.Expect(conversation.SelectingItem); err != nil {
		return Choice{}, unexpectedStep(err)
	}

	item, err := uow.MenuRepository().GetByName(ctx, cmd.ItemName())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Choice{}, fmt.Errorf("%w: %q is not on the menu", ErrInvalidInput, cmd.ItemName())
	}
	if err != nil {
		return Choice{}, err
	}

	if err = conv.ChooseItem(item.ID(), now); err != nil {
		return Choice{}, unexpectedStep(err)
	}
	if err = uow.ConversationRepository().Save(ctx, conv); err != nil {
		return Choice{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Choice{}, err
	}

	return newChoice(item), nil
}
