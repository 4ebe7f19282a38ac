package learningimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// ScheduleGeneration sets up the daily learning-generation job.
func (g *GeneratorImpl) ScheduleGeneration(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create learning scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(uint(g.Config.Learning.DailyAtHour), 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				g.Logger.Info("Context cancelled, stopping learning generation job")
				return
			}

			g.Logger.Info("Starting scheduled learning generation")

			taskCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
			defer cancel()

			summary, err := g.ProcessAll(taskCtx)
			if err != nil {
				g.Logger.Error("Scheduled learning generation failed", "error", err)
				return
			}

			g.Logger.Info("Scheduled learning generation finished",
				"organizations", summary.Organizations, "generated", summary.Generated, "failed", summary.Failed)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule learning generation: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		g.Logger.Info("Stopping learning scheduler")
		if err := scheduler.Shutdown(); err != nil {
			g.Logger.Error("Failed to shut down learning scheduler", "error", err)
		}
	}()

	return nil
}
