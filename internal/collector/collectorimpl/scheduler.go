package collectorimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// ScheduleCollection sets up the recurring metric-collection job.
func (c *CollectorImpl) ScheduleCollection(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create collection scheduler: %w", err)
	}

	interval := time.Duration(c.Config.Collector.IntervalMinutes) * time.Minute

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				c.Logger.Info("Context cancelled, stopping collection job")
				return
			}

			c.Logger.Info("Starting scheduled metric collection")

			taskCtx, cancel := context.WithTimeout(ctx, interval)
			defer cancel()

			stats, err := c.CollectAll(taskCtx)
			if err != nil {
				c.Logger.Error("Scheduled metric collection failed", "error", err)
				return
			}

			c.Logger.Info("Scheduled metric collection finished",
				"processed", stats.Processed, "updated", stats.Updated, "errors", stats.Errors)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule metric collection: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		c.Logger.Info("Stopping collection scheduler")
		if err := scheduler.Shutdown(); err != nil {
			c.Logger.Error("Failed to shut down collection scheduler", "error", err)
		}
	}()

	return nil
}

// ScheduleDatabaseCleanup sets up a daily job deleting snapshots older than
// the retention window.
func (c *CollectorImpl) ScheduleDatabaseCleanup(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create cleanup scheduler: %w", err)
	}

	// Runs at 3:00 AM every day
	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				c.Logger.Info("Context cancelled, stopping database cleanup job")
				return
			}

			c.Logger.Info("Starting scheduled snapshot cleanup")

			cleanupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			retention := time.Duration(c.Config.Collector.RetentionDays) * 24 * time.Hour

			rowsDeleted, err := c.SnapshotRepo.CleanupOldRecords(cleanupCtx, retention)
			if err != nil {
				c.Logger.Error("Failed to clean up old snapshots", "error", err)
				return
			}

			c.Logger.Info("Snapshot cleanup completed", "rows_deleted", rowsDeleted)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot cleanup: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		c.Logger.Info("Stopping cleanup scheduler")
		if err := scheduler.Shutdown(); err != nil {
			c.Logger.Error("Failed to shut down cleanup scheduler", "error", err)
		}
	}()

	return nil
}
