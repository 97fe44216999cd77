package jobs

import (
	"context"
	"log/slog"
	"time"

	"buttery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the sweep once a minute, on second zero.
const DefaultSweepSchedule = "0 * * * * *"

// ReservationSweeper is satisfied by commands.ReleaseExpiredReservationsCommandHandler.
type ReservationSweeper interface {
	Handle(ctx context.Context, cmd commands.ReleaseExpiredReservationsCommand) (int, error)
}

// ReservationSweepJob returns stock held by abandoned Pending orders.
type ReservationSweepJob struct {
	sweeper  ReservationSweeper
	ttl      time.Duration
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReservationSweepJob creates the job. An empty schedule means
// DefaultSweepSchedule; schedules have a seconds field.
func NewReservationSweepJob(
	sweeper ReservationSweeper,
	ttl time.Duration,
	schedule string,
	logger *slog.Logger,
) *ReservationSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	return &ReservationSweepJob{
		sweeper:  sweeper,
		ttl:      ttl,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reservation_sweep_job"),
	}
}

// RunOnce sweeps reservations older than the TTL and returns how many
// orders were released.
func (j *ReservationSweepJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewReleaseExpiredReservationsCommand(j.now(), j.ttl)
	if err != nil {
		return 0, err
	}

	released, err := j.sweeper.Handle(ctx, cmd)
	if err != nil {
		return released, err
	}
	if released > 0 {
		j.logger.InfoContext(ctx, "Released expired reservations",
			"orders", released, "cutoff", cmd.Cutoff())
	}
	return released, nil
}

// Start schedules the sweep.
func (j *ReservationSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Reservation sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation sweep job started",
		"schedule", j.schedule, "ttl", j.ttl)
	return nil
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *ReservationSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Reservation sweep job stopped")
}
