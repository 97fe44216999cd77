package queries

import (
	"errors"
	"strings"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/order"
	"buttery/internal/pkg/errs"
	"buttery/internal/pkg/guard"
)

var ErrGetCustomerStatusQueryIsNotConstructed = errors.New(
	"GetCustomerStatusQuery must be created via NewGetCustomerStatusQuery constructor",
)

// GetCustomerStatusQuery looks up the status of a customer's most recent order.
type GetCustomerStatusQuery struct {
	customerName string

	guard guard.ConstructorGuard
}

func NewGetCustomerStatusQuery(customerName string) (GetCustomerStatusQuery, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return GetCustomerStatusQuery{}, errs.NewValueIsRequiredError("customer name")
	}

	return GetCustomerStatusQuery{
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerStatusQueryIsNotConstructed)
}

func (q GetCustomerStatusQuery) CustomerName() string {
	return q.customerName
}

type CustomerStatusResponse struct {
	OrderID kernel.ID
	Status  order.Status
}
