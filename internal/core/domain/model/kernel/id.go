package kernel

import (
	"fmt"
	"strconv"

	"buttery/internal/pkg/errs"
)

var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// ID identifies a persisted menu item or order. The store assigns IDs on insert,
// so an aggregate that has not been saved yet carries the zero ID.
type ID struct {
	value int64
}

func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(v)
}

// MustNewID is meant for tests and constants.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (i ID) Int64() int64 {
	return i.value
}

func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

func (i ID) IsZero() bool {
	return i.value == 0
}

func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
