package commands

import (
	"errors"

	"buttery/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand is a customer asking to place a new order.
//
// Example:
//
//	cmd, err := NewStartOrderCommand("alice", 1001)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	// result.Choices lists the items the customer can pick
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	customer customerRef

	guard guard.ConstructorGuard
}

// NewStartOrderCommand requires a customer name and the chat the customer writes from.
func NewStartOrderCommand(customerName string, chatID int64) (StartOrderCommand, error) {
	customer, err := newCustomerRef(customerName, chatID)
	if err != nil {
		return StartOrderCommand{}, err
	}

	return StartOrderCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

func (c StartOrderCommand) CustomerName() string {
	return c.customer.name
}

func (c StartOrderCommand) ChatID() int64 {
	return c.customer.chatID
}
