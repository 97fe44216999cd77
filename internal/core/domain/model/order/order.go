package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	ErrOrderIsNotPending     = errors.New("order is no longer pending")
	ErrOrderIsEmpty          = errors.New("order has no lines")
	ErrIDIsAlreadyAssigned   = errors.New("order id is already assigned")
)

// Line is one (menu item, quantity) entry of an order.
type Line struct {
	itemID   kernel.ID
	quantity kernel.Quantity
}

func NewLine(itemID kernel.ID, quantity kernel.Quantity) (Line, error) {
	if err := errors.Join(itemID.Validate(), quantity.Validate()); err != nil {
		return Line{}, err
	}
	return Line{itemID: itemID, quantity: quantity}, nil
}

func (l Line) ItemID() kernel.ID {
	return l.itemID
}

func (l Line) Quantity() kernel.Quantity {
	return l.quantity
}

// Order is the aggregate a customer assembles while in Pending status and staff
// move through the lifecycle afterwards.
//
// Invariants:
//   - lines are unique per menu item; adding an item again accumulates its quantity
//   - lines can only change while the order is Pending
type Order struct {
	id           kernel.ID
	customerName string
	chatID       int64
	status       Status
	createdAt    time.Time
	lines        []Line

	isConstructed bool
}

// NewOrder opens an empty Pending order for a customer.
func NewOrder(customerName string, chatID int64, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := o.setCustomerName(customerName); err != nil {
		return nil, err
	}
	o.chatID = chatID

	return o, nil
}

// RestoreOrder rebuilds an order loaded from the store.
func RestoreOrder(
	id kernel.ID,
	customerName string,
	chatID int64,
	status Status,
	createdAt time.Time,
	lines []Line,
) (*Order, error) {
	o := &Order{
		chatID:        chatID,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		o.setCustomerName(customerName),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.id = id
	o.status = status

	for _, line := range lines {
		if err := line.quantity.Validate(); err != nil {
			return nil, err
		}
		o.mergeLine(line.itemID, line.quantity)
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) ChatID() int64 {
	return o.chatID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Lines returns a copy of the order lines in insertion order.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) HasItem(itemID kernel.ID) bool {
	for _, l := range o.lines {
		if l.itemID.IsEqual(itemID) {
			return true
		}
	}
	return false
}

// AssignID records the identifier the store generated on insert.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrIDIsAlreadyAssigned
	}
	o.id = id
	return nil
}

// AddLine adds qty of an item, merging into the existing line for that item.
// Stock is not checked here; callers reserve it on the menu item first.
func (o *Order) AddLine(itemID kernel.ID, qty kernel.Quantity) error {
	if err := errors.Join(itemID.Validate(), qty.Validate()); err != nil {
		return err
	}
	if o.status != Pending {
		return fmt.Errorf("%w: order %s is %s", ErrOrderIsNotPending, o.id, o.status)
	}

	o.mergeLine(itemID, qty)
	return nil
}

// Finalize closes a Pending order for editing and moves it to AwaitingPayment.
func (o *Order) Finalize() error {
	if o.status != Pending {
		return fmt.Errorf("%w: order %s is %s", ErrOrderIsNotPending, o.id, o.status)
	}
	if len(o.lines) == 0 {
		return ErrOrderIsEmpty
	}

	o.status = AwaitingPayment
	return nil
}

// ChangeStatus applies an admin status change. See Status.TransitionTo.
func (o *Order) ChangeStatus(target Status, restricted bool) error {
	next, err := o.status.TransitionTo(target, restricted)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) mergeLine(itemID kernel.ID, qty kernel.Quantity) {
	for i, l := range o.lines {
		if l.itemID.IsEqual(itemID) {
			o.lines[i].quantity = l.quantity.Add(qty)
			return
		}
	}
	o.lines = append(o.lines, Line{itemID: itemID, quantity: qty})
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	return nil
}
