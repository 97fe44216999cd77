package queries

import (
	"errors"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/order"
	"buttery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders with a one-line description of their contents.
// Without statuses every order is listed.
//
// Example:
//
//	query, _ := NewListOrdersQuery(order.Processing)
//	rows, err := NewListOrdersQueryHandler(db).Handle(ctx, query)
//	for _, r := range rows {
//	    fmt.Printf("%s: @%s - %s\n", r.OrderID, r.CustomerName, r.Contents)
//	}
type ListOrdersQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(statuses ...order.Status) (ListOrdersQuery, error) {
	problems := make([]error, 0, len(statuses))
	for _, s := range statuses {
		problems = append(problems, s.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return ListOrdersQuery{}, err
	}

	copied := make([]order.Status, len(statuses))
	copy(copied, statuses)

	return ListOrdersQuery{
		statuses: copied,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Statuses() []order.Status {
	copied := make([]order.Status, len(q.statuses))
	copy(copied, q.statuses)
	return copied
}

// OrderDetailResponse is a row of the order_details view.
type OrderDetailResponse struct {
	OrderID      kernel.ID
	CustomerName string
	Status       order.Status
	Contents     string
}
