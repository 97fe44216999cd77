package services

import (
	"errors"
	"fmt"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/menu"
	"buttery/internal/core/domain/model/order"
)

// ErrMenuItemMissing is returned when an order line refers to an item the pricer was not given.
var ErrMenuItemMissing = errors.New("menu item for order line is missing")

// ReceiptLine is one priced line of a Receipt.
type ReceiptLine struct {
	ItemID    kernel.ID
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// Receipt is the order summary shown to the customer after finalization.
type Receipt struct {
	OrderID  kernel.ID
	Customer string
	Lines    []ReceiptLine
	Total    kernel.Money
}

// OrderPricer totals an order as sum(line quantity * current item price).
// Prices are read when the order is finalized, not when lines were added.
//
//	pricer := NewOrderPricer()
//	receipt, err := pricer.Price(o, items)
//	fmt.Println(receipt.Total) // 8.50
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

func (p OrderPricer) Price(o *order.Order, items []*menu.Item) (Receipt, error) {
	if err := o.Validate(); err != nil {
		return Receipt{}, err
	}

	byID := make(map[int64]*menu.Item, len(items))
	for _, item := range items {
		byID[item.ID().Int64()] = item
	}

	receipt := Receipt{
		OrderID:  o.ID(),
		Customer: o.CustomerName(),
		Total:    kernel.ZeroMoney(),
	}

	for _, line := range o.Lines() {
		item, ok := byID[line.ItemID().Int64()]
		if !ok {
			return Receipt{}, fmt.Errorf("%w: item %s", ErrMenuItemMissing, line.ItemID())
		}

		subtotal := item.Price().Times(line.Quantity())
		receipt.Lines = append(receipt.Lines, ReceiptLine{
			ItemID:    item.ID(),
			Name:      item.Name(),
			Quantity:  line.Quantity().Int(),
			UnitPrice: item.Price(),
			Subtotal:  subtotal,
		})
		receipt.Total = receipt.Total.Add(subtotal)
	}

	return receipt, nil
}
