package commands

import (
	"errors"
	"fmt"

	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/core/domain/model/menu"
	"buttery/internal/core/domain/model/order"
	"buttery/internal/pkg/errs"
)

var (
	// ErrDuplicatePendingOrder is returned when a customer who is still assembling
	// an order asks for a new one.
	ErrDuplicatePendingOrder = errors.New("customer already has a pending order, please contact staff")

	// ErrActiveOrderExists is returned when the customer's previous order has not
	// been collected or cancelled yet.
	ErrActiveOrderExists = errors.New("customer already has an order in progress, please contact staff")

	ErrOrderNotFound = errors.New("order not found")

	// ErrMultiplePendingOrdersDetected means a prior write broke the one pending
	// order per customer rule. It is logged, never shown to customers.
	ErrMultiplePendingOrdersDetected = errors.New("multiple pending orders detected")

	ErrInvalidInput = errors.New("invalid input")

	// ErrUnexpectedInput is an ErrInvalidInput for an intent that does not match
	// the step the conversation waits for.
	ErrUnexpectedInput = fmt.Errorf("%w: unexpected for current step", ErrInvalidInput)

	ErrNoItemsAvailable = fmt.Errorf("%w: no menu items left to select", ErrInvalidInput)
)

// IsUserCorrectable reports whether err can be shown to the caller as is and
// fixed by another attempt. Everything else is an internal failure.
func IsUserCorrectable(err error) bool {
	if err == nil || errors.Is(err, ErrMultiplePendingOrdersDetected) {
		return false
	}

	for _, target := range []error{
		menu.ErrInsufficientStock,
		ErrDuplicatePendingOrder,
		ErrActiveOrderExists,
		order.ErrInvalidTransition,
		ErrOrderNotFound,
		errs.ErrObjectNotFound,
		ErrInvalidInput,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsRequired,
		errs.ErrValueIsOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// unexpectedStep turns a conversation step mismatch into ErrUnexpectedInput.
func unexpectedStep(err error) error {
	if errors.Is(err, conversation.ErrUnexpectedStep) {
		return fmt.Errorf("%w: %w", ErrUnexpectedInput, err)
	}
	return err
}
