// Package jobs provides scheduled background tasks for the allocation system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order allocation service.
//
// # Available Jobs
//
// 1. DailyAllocationJob - Runs daily at 07:00 to allocate pending orders across all warehouses
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(runDailyAllocationHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The allocation job uses the cron expression "0 0 7 * * *" (second-granular
// format), firing once per day at 07:00 so assignments are ready before
// delivery agents start their shifts. Warehouse-level failures inside a run
// are logged and isolated; the run continues with the remaining warehouses.
package jobs
