package order

import (
	"errors"
	"fmt"

	"buttery/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a restricted caller asks for a status
// that is not one edge away from the current one.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status is the lifecycle state of an order.
//
//	Pending ──> AwaitingPayment ──┬──> Processing ──> OrderReady ──> OrderCollected
//	                              └──> Cancelled
//
// Pending -> AwaitingPayment is taken by Order.Finalize. The remaining edges form
// the restricted graph available to the admin workflow.
type Status int

const (
	Unknown Status = iota
	Pending
	AwaitingPayment
	Processing
	OrderReady
	OrderCollected
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		AwaitingPayment: "AwaitingPayment",
		Processing:      "Processing",
		OrderReady:      "OrderReady",
		OrderCollected:  "OrderCollected",
		Cancelled:       "Cancelled",
	}
}

// getRestrictedTransitions returns the adjacency table of the admin workflow.
// Statuses without an entry have no outgoing edges.
func getRestrictedTransitions() map[Status][]Status {
	return map[Status][]Status{
		AwaitingPayment: {Processing, Cancelled},
		Processing:      {OrderReady},
		OrderReady:      {OrderCollected},
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, AwaitingPayment, Processing, OrderReady, OrderCollected, Cancelled}
}

// ParseStatus maps a persisted status name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AllowedTransitions returns the statuses a restricted caller may move to from s.
func (s Status) AllowedTransitions() []Status {
	next := getRestrictedTransitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getRestrictedTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports statuses the order never leaves in the restricted workflow.
func (s Status) IsTerminal() bool {
	return s == OrderCollected || s == Cancelled
}

// IsActive reports finalized orders that staff still have to act on.
func (s Status) IsActive() bool {
	return s == AwaitingPayment || s == Processing || s == OrderReady
}

// TransitionTo validates a move to target. With restricted set the move has to
// follow one edge of the admin graph; otherwise any valid status is accepted.
func (s Status) TransitionTo(target Status, restricted bool) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if restricted && !s.CanTransitionTo(target) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return target, nil
}
