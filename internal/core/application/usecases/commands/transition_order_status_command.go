package commands

import (
	"errors"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/order"
	"buttery/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand is an admin moving an order to another status.
// Restricted callers follow the staff workflow graph; unrestricted callers may
// set any status to correct mistakes.
//
// Example:
//
//	cmd, err := NewTransitionOrderStatusCommand(orderID, order.Processing, true)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); errors.Is(err, order.ErrInvalidTransition) {
//	    // offer order.Status.AllowedTransitions() instead
//	}
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	target     order.Status
	restricted bool

	guard guard.ConstructorGuard
}

func NewTransitionOrderStatusCommand(
	orderID kernel.ID,
	target order.Status,
	restricted bool,
) (TransitionOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), target.Validate()); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return TransitionOrderStatusCommand{
		orderID:    orderID,
		target:     target,
		restricted: restricted,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

func (c TransitionOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c TransitionOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c TransitionOrderStatusCommand) Restricted() bool {
	return c.restricted
}
