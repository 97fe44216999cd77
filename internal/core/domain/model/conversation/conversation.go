// Package conversation tracks which input the ordering flow expects next from
// a customer. It is stored next to the order data so that a restarted process
// resumes each customer at the same step.
package conversation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/pkg/errs"
)

var (
	ErrConversationIsNotConstructed = errors.New("Conversation must be created via New or Restore constructor")

	// ErrUnexpectedStep is returned when an intent arrives while the flow waits for another one.
	ErrUnexpectedStep = errors.New("unexpected input for current step")
)

// Step is the input the flow waits for.
//
//	Idle ──> SelectingItem ──> SelectingQuantity ──> ConfirmOrMore ──> AwaitingPaymentProof ──> Idle
//	              ^                   │                    │
//	              └───────────────────┴────────────────────┘
type Step int

const (
	Unknown Step = iota
	Idle
	SelectingItem
	SelectingQuantity
	ConfirmOrMore
	AwaitingPaymentProof
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		Unknown:              "Unknown",
		Idle:                 "Idle",
		SelectingItem:        "SelectingItem",
		SelectingQuantity:    "SelectingQuantity",
		ConfirmOrMore:        "ConfirmOrMore",
		AwaitingPaymentProof: "AwaitingPaymentProof",
	}
}

func ParseStep(s string) (Step, error) {
	for step, name := range getStepStrings() {
		if step != Unknown && name == s {
			return step, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%q is not a valid step", s))
}

func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Step) Validate() error {
	if s <= Unknown || s > AwaitingPaymentProof {
		return errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// Conversation is the per-customer marker of the ordering flow.
type Conversation struct {
	customerName string
	chatID       int64
	step         Step
	itemID       kernel.ID
	orderID      kernel.ID
	updatedAt    time.Time

	isConstructed bool
}

// New starts an idle conversation.
func New(customerName string, chatID int64, now time.Time) (*Conversation, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("customer name")
	}

	return &Conversation{
		customerName:  name,
		chatID:        chatID,
		step:          Idle,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// Restore rebuilds a conversation from the store. Zero IDs mean "not set".
func Restore(
	customerName string,
	chatID int64,
	step Step,
	itemID, orderID kernel.ID,
	updatedAt time.Time,
) (*Conversation, error) {
	c, err := New(customerName, chatID, updatedAt)
	if err != nil {
		return nil, err
	}
	if err = step.Validate(); err != nil {
		return nil, err
	}

	c.step = step
	c.itemID = itemID
	c.orderID = orderID
	return c, nil
}

func (c *Conversation) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConversationIsNotConstructed
	}
	return nil
}

func (c *Conversation) CustomerName() string { return c.customerName }
func (c *Conversation) ChatID() int64         { return c.chatID }
func (c *Conversation) Step() Step            { return c.step }
func (c *Conversation) UpdatedAt() time.Time  { return c.updatedAt }

// SelectedItem is the item whose quantity is awaited; zero outside SelectingQuantity.
func (c *Conversation) SelectedItem() kernel.ID { return c.itemID }

// OrderID is the order the flow is working on; zero until the first line is written.
func (c *Conversation) OrderID() kernel.ID { return c.orderID }

// Expect fails with ErrUnexpectedStep unless the conversation is at step.
func (c *Conversation) Expect(step Step) error {
	if c.step != step {
		return fmt.Errorf("%w: waiting for %s, got input for %s", ErrUnexpectedStep, c.step, step)
	}
	return nil
}

// Touch updates the chat the customer writes from.
func (c *Conversation) Touch(chatID int64, now time.Time) {
	c.chatID = chatID
	c.updatedAt = now
}

// StartSelecting moves the flow to item selection from any step.
func (c *Conversation) StartSelecting(now time.Time) {
	c.step = SelectingItem
	c.itemID = kernel.ID{}
	c.updatedAt = now
}

// ChooseItem records the selected item and waits for a quantity.
func (c *Conversation) ChooseItem(itemID kernel.ID, now time.Time) error {
	if err := c.Expect(SelectingItem); err != nil {
		return err
	}
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.step = SelectingQuantity
	c.itemID = itemID
	c.updatedAt = now
	return nil
}

// AwaitConfirmation follows a written line and asks whether to add more.
func (c *Conversation) AwaitConfirmation(orderID kernel.ID, now time.Time) error {
	if err := c.Expect(SelectingQuantity); err != nil {
		return err
	}

	c.step = ConfirmOrMore
	c.itemID = kernel.ID{}
	c.orderID = orderID
	c.updatedAt = now
	return nil
}

// AwaitPaymentProof follows finalization.
func (c *Conversation) AwaitPaymentProof(orderID kernel.ID, now time.Time) {
	c.step = AwaitingPaymentProof
	c.itemID = kernel.ID{}
	c.orderID = orderID
	c.updatedAt = now
}

// Reset returns the conversation to Idle and forgets the order.
func (c *Conversation) Reset(now time.Time) {
	c.step = Idle
	c.itemID = kernel.ID{}
	c.orderID = kernel.ID{}
	c.updatedAt = now
}
