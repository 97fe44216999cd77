package queries

import (
	"errors"
	"strings"

	"buttery/internal/pkg/errs"
	"buttery/internal/pkg/guard"
)

var ErrGetSelectableItemsQueryIsNotConstructed = errors.New(
	"GetSelectableItemsQuery must be created via NewGetSelectableItemsQuery constructor",
)

// GetSelectableItemsQuery lists the menu items a customer has not put on the
// Pending order yet.
type GetSelectableItemsQuery struct {
	customerName string

	guard guard.ConstructorGuard
}

func NewGetSelectableItemsQuery(customerName string) (GetSelectableItemsQuery, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return GetSelectableItemsQuery{}, errs.NewValueIsRequiredError("customer name")
	}

	return GetSelectableItemsQuery{
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetSelectableItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetSelectableItemsQueryIsNotConstructed)
}

func (q GetSelectableItemsQuery) CustomerName() string {
	return q.customerName
}
