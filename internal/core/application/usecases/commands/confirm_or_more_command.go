package commands

import (
	"errors"

	"buttery/internal/pkg/guard"
)

var ErrConfirmOrMoreCommandIsNotConstructed = errors.New(
	"ConfirmOrMoreCommand must be created via NewConfirmOrMoreCommand constructor",
)

// ConfirmOrMoreCommand answers "add another item?". More loops back to item
// selection, otherwise the order is finalized.
type ConfirmOrMoreCommand struct { //nolint:recvcheck //using for validation
	customer customerRef
	more     bool

	guard guard.ConstructorGuard
}

func NewConfirmOrMoreCommand(customerName string, chatID int64, more bool) (ConfirmOrMoreCommand, error) {
	customer, err := newCustomerRef(customerName, chatID)
	if err != nil {
		return ConfirmOrMoreCommand{}, err
	}

	return ConfirmOrMoreCommand{
		customer: customer,
		more:     more,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmOrMoreCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrMoreCommandIsNotConstructed)
}

func (c ConfirmOrMoreCommand) CustomerName() string {
	return c.customer.name
}

func (c ConfirmOrMoreCommand) More() bool {
	return c.more
}
