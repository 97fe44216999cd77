package menu

import (
	"errors"
	"fmt"
	"strings"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/pkg/errs"
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

	// ErrInsufficientStock is returned by Reserve when fewer portions are left than requested.
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrIDIsAlreadyAssigned = errors.New("item id is already assigned")
)

// Item is a menu entry. Its ID is zero until the store has inserted it.
type Item struct {
	id       kernel.ID
	name     string
	quantity int
	price    kernel.Money

	isConstructed bool
}

// NewItem creates an item that has not been persisted yet.
func NewItem(name string, quantity int, price kernel.Money) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}
	item.price = price

	return item, nil
}

// RestoreItem rebuilds an item loaded from the store.
func RestoreItem(id kernel.ID, name string, quantity int, price kernel.Money) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	item, err := NewItem(name, quantity, price)
	if err != nil {
		return nil, err
	}
	item.id = id

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.ID {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) InStock() bool {
	return i.quantity > 0
}

// AssignID records the identifier the store generated on insert.
func (i *Item) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !i.id.IsZero() {
		return ErrIDIsAlreadyAssigned
	}
	i.id = id
	return nil
}

// Reserve takes qty portions out of stock. On shortage the item is left untouched.
func (i *Item) Reserve(qty kernel.Quantity) error {
	if err := qty.Validate(); err != nil {
		return err
	}
	if qty.Int() > i.quantity {
		return fmt.Errorf("%w: %s has %d left, %d requested", ErrInsufficientStock, i.name, i.quantity, qty.Int())
	}
	i.quantity -= qty.Int()
	return nil
}

// Release puts back portions taken by Reserve.
func (i *Item) Release(qty kernel.Quantity) error {
	if err := qty.Validate(); err != nil {
		return err
	}
	i.quantity += qty.Int()
	return nil
}

// Restock overwrites the stock level.
func (i *Item) Restock(quantity int) error {
	return i.setQuantity(quantity)
}

// Reduce removes up to amount portions; stock bottoms out at zero.
func (i *Item) Reduce(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", amount))
	}
	i.quantity = max(i.quantity-amount, 0)
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}
