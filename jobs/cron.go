package jobs

import (
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"

	"pethotel-backend/utils"
)

// AvailabilityReconciler is what the scheduled jobs need from the
// reconciliation engine.
type AvailabilityReconciler interface {
	RefreshSnapshots()
	BroadcastMismatches(m *melody.Melody) error
}

var reconciler AvailabilityReconciler

// SetReconciler hands the jobs their reconciler implementation.
func SetReconciler(r AvailabilityReconciler) {
	reconciler = r
}

// InitCronJobs schedules the hourly snapshot refresh and the nightly
// mismatch sweep, then starts the scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	if _, err := c.AddFunc("@hourly", func() {
		if reconciler == nil {
			return
		}
		reconciler.RefreshSnapshots()
	}); err != nil {
		return err
	}

	if _, err := c.AddFunc("0 0 * * *", func() {
		if reconciler == nil {
			utils.LogError("nightly sweep skipped: reconciler not set")
			return
		}
		if err := reconciler.BroadcastMismatches(m); err != nil {
			utils.LogError("nightly sweep broadcast failed: %v", err)
		}
	}); err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
