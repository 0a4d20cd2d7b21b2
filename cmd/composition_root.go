package cmd

import (
	"log/slog"

	"allocation/internal/adapters/out/postgres"
	"allocation/internal/core/application/usecases/commands"
	"allocation/internal/core/application/usecases/queries"
	"allocation/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateAllocateOrdersCommandHandler() commands.AllocateOrdersCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAllocateOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateRunDailyAllocationCommandHandler() commands.RunDailyAllocationCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRunDailyAllocationCommandHandler(f, c.CreateAllocateOrdersCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateGetDailySummaryQueryHandler() queries.GetDailySummaryQueryHandler {
	return queries.NewGetDailySummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentPerformanceQueryHandler() queries.GetAgentPerformanceQueryHandler {
	return queries.NewGetAgentPerformanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRunDailyAllocationCommandHandler(), c.logger)
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}
