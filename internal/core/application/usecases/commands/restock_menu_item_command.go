package commands

import (
	"errors"
	"fmt"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/pkg/errs"
	"buttery/internal/pkg/guard"
)

var ErrRestockMenuItemCommandIsNotConstructed = errors.New(
	"RestockMenuItemCommand must be created via NewRestockMenuItemCommand constructor",
)

// RestockMenuItemCommand overwrites the stock of a menu item.
type RestockMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.ID
	quantity int

	guard guard.ConstructorGuard
}

func NewRestockMenuItemCommand(itemID kernel.ID, quantity int) (RestockMenuItemCommand, error) {
	var quantityErr error
	if quantity < 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	if err := errors.Join(itemID.Validate(), quantityErr); err != nil {
		return RestockMenuItemCommand{}, err
	}

	return RestockMenuItemCommand{
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RestockMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRestockMenuItemCommandIsNotConstructed)
}

func (c RestockMenuItemCommand) ItemID() kernel.ID {
	return c.itemID
}

func (c RestockMenuItemCommand) Quantity() int {
	return c.quantity
}
