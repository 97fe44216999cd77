package commands

import (
	"errors"

	"buttery/internal/pkg/guard"
)

var ErrSubmitQuantityCommandIsNotConstructed = errors.New(
	"SubmitQuantityCommand must be created via NewSubmitQuantityCommand constructor",
)

// SubmitQuantityCommand carries the quantity exactly as the customer typed it.
// Parsing happens in the handler so that bad input can be answered with a
// re-prompt at the current step.
type SubmitQuantityCommand struct { //nolint:recvcheck //using for validation
	customer customerRef
	text     string

	guard guard.ConstructorGuard
}

func NewSubmitQuantityCommand(customerName string, chatID int64, text string) (SubmitQuantityCommand, error) {
	customer, err := newCustomerRef(customerName, chatID)
	if err != nil {
		return SubmitQuantityCommand{}, err
	}

	return SubmitQuantityCommand{
		customer: customer,
		text:     text,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSubmitQuantityCommandIsNotConstructed)
}

func (c SubmitQuantityCommand) CustomerName() string {
	return c.customer.name
}

func (c SubmitQuantityCommand) Text() string {
	return c.text
}
