// Package jobs provides scheduled background tasks.
//
// Jobs are cron based (github.com/robfig/cron/v3, with a seconds field).
//
// # Available Jobs
//
// ReservationSweepJob releases the stock held by Pending orders that were
// abandoned mid-assembly. An order counts as abandoned when it is older than
// the reservation TTL and its customer has not answered within the TTL
// either. Stock of every line goes back to the menu and the order is deleted.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(sweepHandler, 30*time.Minute, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A zero TTL leaves reservations in place until staff act on them.
package jobs
