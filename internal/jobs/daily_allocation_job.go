package jobs

import (
	"context"
	"log/slog"
	"time"

	"allocation/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// dailyAllocationSchedule fires once per day at 07:00 server time.
const dailyAllocationSchedule = "0 0 7 * * *"

// DailyAllocationJob runs the allocation cycle for every warehouse once per
// day, before delivery agents start their shifts.
type DailyAllocationJob struct {
	handler commands.RunDailyAllocationCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyAllocationJob creates a new job that triggers the daily allocation run.
func NewDailyAllocationJob(handler commands.RunDailyAllocationCommandHandler, logger *slog.Logger) *DailyAllocationJob {
	return &DailyAllocationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_allocation_job"),
	}
}

// Start schedules the daily allocation run at 07:00.
func (j *DailyAllocationJob) Start() error {
	_, err := j.cron.AddFunc(dailyAllocationSchedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRunDailyAllocationCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build daily allocation command", "error", err)
			return
		}

		report, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily allocation run failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Daily allocation run finished",
			"assigned", report.TotalAssigned,
			"deferred", report.TotalDeferred,
			"failed_warehouses", len(report.FailedWarehouses))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily allocation job started (running daily at 07:00)")
	return nil
}

// Stop stops the daily allocation job.
func (j *DailyAllocationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily allocation job stopped")
}
