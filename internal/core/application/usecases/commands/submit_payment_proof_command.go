package commands

import (
	"errors"
	"strings"

	"buttery/internal/pkg/guard"
)

var ErrSubmitPaymentProofCommandIsNotConstructed = errors.New(
	"SubmitPaymentProofCommand must be created via NewSubmitPaymentProofCommand constructor",
)

// SubmitPaymentProofCommand carries a reference to the screenshot or document
// the customer uploaded. An empty reference means the customer sent something
// else, and the handler re-prompts.
type SubmitPaymentProofCommand struct { //nolint:recvcheck //using for validation
	customer   customerRef
	attachment string

	guard guard.ConstructorGuard
}

func NewSubmitPaymentProofCommand(customerName string, chatID int64, attachment string) (SubmitPaymentProofCommand, error) {
	customer, err := newCustomerRef(customerName, chatID)
	if err != nil {
		return SubmitPaymentProofCommand{}, err
	}

	return SubmitPaymentProofCommand{
		customer:   customer,
		attachment: strings.TrimSpace(attachment),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitPaymentProofCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPaymentProofCommandIsNotConstructed)
}

func (c SubmitPaymentProofCommand) CustomerName() string {
	return c.customer.name
}

func (c SubmitPaymentProofCommand) Attachment() string {
	return c.attachment
}
