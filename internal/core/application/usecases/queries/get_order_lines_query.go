package queries

import (
	"errors"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/pkg/guard"
)

var ErrGetOrderLinesQueryIsNotConstructed = errors.New(
	"GetOrderLinesQuery must be created via NewGetOrderLinesQuery constructor",
)

// GetOrderLinesQuery lists one order's lines with item names and current prices.
type GetOrderLinesQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderLinesQuery(orderID kernel.ID) (GetOrderLinesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderLinesQuery{}, err
	}

	return GetOrderLinesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderLinesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLinesQueryIsNotConstructed)
}

func (q GetOrderLinesQuery) OrderID() kernel.ID {
	return q.orderID
}

type OrderLineResponse struct {
	ItemID    kernel.ID
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}
