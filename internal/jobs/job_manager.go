package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reservationSweepJob *ReservationSweepJob
	logger              *slog.Logger
}

// NewJobManager wires the jobs. A zero reservation TTL disables the sweep.
func NewJobManager(
	sweeper ReservationSweeper,
	reservationTTL time.Duration,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}
	if reservationTTL > 0 {
		jm.reservationSweepJob = NewReservationSweepJob(sweeper, reservationTTL, sweepSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if jm.reservationSweepJob == nil {
		jm.logger.Info("Reservation sweep disabled")
		return nil
	}
	if err := jm.reservationSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start reservation sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.reservationSweepJob != nil {
		jm.reservationSweepJob.Stop()
	}
}
