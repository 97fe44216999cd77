package commands

import (
	"context"
	"errors"
	"strings"

	"buttery/internal/core/domain/model/menu"
	"buttery/internal/pkg/errs"
)

// SeedMenuCommandHandler inserts catalog items whose names are not on the menu
// yet. Existing items keep their stock and price, so seeding on every start is
// safe.
type SeedMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewSeedMenuCommandHandler(uowFactory MenuUoWFactory) SeedMenuCommandHandler {
	return SeedMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of inserted items.
func (h SeedMenuCommandHandler) Handle(ctx context.Context, cmd SeedMenuCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	inserted := 0
	for _, it := range cmd.Items() {
		_, err := menuRepo.GetByName(ctx, strings.TrimSpace(it.Name))
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return 0, err
		}

		item, err := menu.NewItem(it.Name, it.Quantity, it.Price)
		if err != nil {
			return 0, err
		}
		if err = menuRepo.Add(ctx, item); err != nil {
			return 0, err
		}
		inserted++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return inserted, nil
}
