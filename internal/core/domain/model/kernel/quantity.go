package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"buttery/internal/pkg/errs"
)

// Quantity is a strictly positive number of portions.
type Quantity struct {
	value int
}

func NewQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", value))
	}
	return Quantity{value: value}, nil
}

// ParseQuantity accepts the free text a customer typed, surrounding spaces allowed.
func ParseQuantity(text string) (Quantity, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%q is not a whole number", text))
	}
	return NewQuantity(v)
}

func MustQuantity(value int) Quantity {
	q, err := NewQuantity(value)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quantity) Int() int {
	return q.value
}

func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value + other.value}
}

func (q Quantity) Validate() error {
	if q.value <= 0 {
		return errs.NewValueIsRequiredError("quantity")
	}
	return nil
}
