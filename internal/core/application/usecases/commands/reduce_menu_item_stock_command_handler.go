package commands

import (
	"context"
)

type ReduceMenuItemStockCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewReduceMenuItemStockCommandHandler(uowFactory MenuUoWFactory) ReduceMenuItemStockCommandHandler {
	return ReduceMenuItemStockCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReduceMenuItemStockCommandHandler) Handle(ctx context.Context, cmd ReduceMenuItemStockCommand) error {
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

	if err = item.Reduce(cmd.Amount()); err != nil {
		return err
	}
	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
