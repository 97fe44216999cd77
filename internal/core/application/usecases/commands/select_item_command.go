package commands

import (
	"errors"
	"strings"

	"buttery/internal/pkg/errs"
	"buttery/internal/pkg/guard"
)

var ErrSelectItemCommandIsNotConstructed = errors.New(
	"SelectItemCommand must be created via NewSelectItemCommand constructor",
)

// SelectItemCommand picks a menu item by name while the flow waits for a selection.
type SelectItemCommand struct { //nolint:recvcheck //using for validation
	customer customerRef
	itemName string

	guard guard.ConstructorGuard
}

func NewSelectItemCommand(customerName string, chatID int64, itemName string) (SelectItemCommand, error) {
	cmd := SelectItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	customer, err := newCustomerRef(customerName, chatID)
	if err = errors.Join(err, cmd.setItemName(itemName)); err != nil {
		return SelectItemCommand{}, err
	}
	cmd.customer = customer

	return cmd, nil
}

func (c SelectItemCommand) Validate() error {
	return c.guard.Validate(ErrSelectItemCommandIsNotConstructed)
}

func (c SelectItemCommand) CustomerName() string {
	return c.customer.name
}

func (c SelectItemCommand) ItemName() string {
	return c.itemName
}

func (c *SelectItemCommand) setItemName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}

	c.itemName = name
	return nil
}
