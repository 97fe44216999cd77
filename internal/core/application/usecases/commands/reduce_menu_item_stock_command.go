package commands

import (
	"errors"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/pkg/guard"
)

var ErrReduceMenuItemStockCommandIsNotConstructed = errors.New(
	"ReduceMenuItemStockCommand must be created via NewReduceMenuItemStockCommand constructor",
)

// ReduceMenuItemStockCommand takes portions out of stock, for example after
// walk-in sales. Stock never drops below zero.
type ReduceMenuItemStockCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.ID
	amount kernel.Quantity

	guard guard.ConstructorGuard
}

func NewReduceMenuItemStockCommand(itemID kernel.ID, amount int) (ReduceMenuItemStockCommand, error) {
	qty, qtyErr := kernel.NewQuantity(amount)
	if err := errors.Join(itemID.Validate(), qtyErr); err != nil {
		return ReduceMenuItemStockCommand{}, err
	}

	return ReduceMenuItemStockCommand{
		itemID: itemID,
		amount: qty,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ReduceMenuItemStockCommand) Validate() error {
	return c.guard.Validate(ErrReduceMenuItemStockCommandIsNotConstructed)
}

func (c ReduceMenuItemStockCommand) ItemID() kernel.ID {
	return c.itemID
}

func (c ReduceMenuItemStockCommand) Amount() int {
	return c.amount.Int()
}
