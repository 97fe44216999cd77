package commands

import (
	"context"
)

// RestockMenuItemCommandHandler sets stock unconditionally, as staff count it.
type RestockMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewRestockMenuItemCommandHandler(uowFactory MenuUoWFactory) RestockMenuItemCommandHandler {
	return RestockMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RestockMenuItemCommandHandler) Handle(ctx context.Context, cmd RestockMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	item, err := menuRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.Restock(cmd.Quantity()); err != nil {
		return err
	}
	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
