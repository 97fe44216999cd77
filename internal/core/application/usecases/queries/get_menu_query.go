package queries

import (
	"errors"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery lists the whole menu with current stock.
//
// Example:
//
//	items, err := NewGetMenuQueryHandler(db).Handle(ctx, NewGetMenuQuery())
//	for _, it := range items {
//	    fmt.Printf("%s - $%s (%d left)\n", it.Name, it.Price, it.Quantity)
//	}
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuItemResponse is one menu row.
type MenuItemResponse struct {
	ID       kernel.ID
	Name     string
	Quantity int
	Price    kernel.Money
}
