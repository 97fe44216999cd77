package commands

import (
	"errors"
	"fmt"
	"time"

	"buttery/internal/pkg/errs"
	"buttery/internal/pkg/guard"
)

var ErrReleaseExpiredReservationsCommandIsNotConstructed = errors.New(
	"ReleaseExpiredReservationsCommand must be created via NewReleaseExpiredReservationsCommand constructor",
)

// ReleaseExpiredReservationsCommand gives back the stock held by Pending orders
// that were abandoned for at least ttl.
type ReleaseExpiredReservationsCommand struct { //nolint:recvcheck //using for validation
	now time.Time
	ttl time.Duration

	guard guard.ConstructorGuard
}

func NewReleaseExpiredReservationsCommand(now time.Time, ttl time.Duration) (ReleaseExpiredReservationsCommand, error) {
	var problems []error
	if now.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("now"))
	}
	if ttl <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl)))
	}
	if err := errors.Join(problems...); err != nil {
		return ReleaseExpiredReservationsCommand{}, err
	}

	return ReleaseExpiredReservationsCommand{
		now:   now,
		ttl:   ttl,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseExpiredReservationsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseExpiredReservationsCommandIsNotConstructed)
}

func (c ReleaseExpiredReservationsCommand) Now() time.Time {
	return c.now
}

func (c ReleaseExpiredReservationsCommand) TTL() time.Duration {
	return c.ttl
}

// Cutoff is the latest activity time that still counts as abandoned.
func (c ReleaseExpiredReservationsCommand) Cutoff() time.Time {
	return c.now.Add(-c.ttl)
}
