package commands

import (
	"context"
	"log/slog"
	"time"
)

// AllocationRunReport aggregates the outcome of one multi-warehouse run:
// the per-warehouse summaries of the cycles that completed, totals across
// them, and the warehouses whose cycles failed.
type AllocationRunReport struct {
	Date             time.Time      `json:"date"`
	Summaries        []CycleSummary `json:"summaries"`
	TotalAssigned    int            `json:"total_assigned"`
	TotalDeferred    int            `json:"total_deferred"`
	TotalCost        float64        `json:"total_cost"`
	FailedWarehouses []string       `json:"failed_warehouses,omitempty"`
}

// RunDailyAllocationCommandHandler orchestrates allocation across every
// warehouse. Each warehouse runs its own cycle; a failing cycle is logged
// and recorded in the report but never prevents sibling warehouses from
// running.
//
// Example:
//
//	handler := NewRunDailyAllocationCommandHandler(uowFactory, cycleHandler, logger)
//	cmd, _ := NewRunDailyAllocationCommand(time.Now())
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	log.Printf("Run assigned %d orders across %d warehouses",
//	    report.TotalAssigned, len(report.Summaries))
type RunDailyAllocationCommandHandler struct {
	uowFactory   AllocationUoWFactory
	cycleHandler AllocateOrdersCommandHandler
	logger       *slog.Logger
}

// NewRunDailyAllocationCommandHandler creates a handler for the
// multi-warehouse allocation run.
func NewRunDailyAllocationCommandHandler(
	uowFactory AllocationUoWFactory,
	cycleHandler AllocateOrdersCommandHandler,
	logger *slog.Logger,
) RunDailyAllocationCommandHandler {
	return RunDailyAllocationCommandHandler{
		uowFactory:   uowFactory,
		cycleHandler: cycleHandler,
		logger:       logger.With("component", "daily_allocation"),
	}
}

// Handle runs an allocation cycle for every warehouse and aggregates the
// results. Cycle failures are isolated per warehouse: the failed warehouse
// is logged and listed in the report, and the run continues. Handle itself
// only errors when the warehouse list cannot be read.
func (h RunDailyAllocationCommandHandler) Handle(
	ctx context.Context,
	command RunDailyAllocationCommand,
) (AllocationRunReport, error) {
	if err := command.Validate(); err != nil {
		return AllocationRunReport{}, err
	}

	warehouses, err := h.uowFactory.Create().WarehouseRepository().GetAll(ctx)
	if err != nil {
		return AllocationRunReport{}, err
	}

	report := AllocationRunReport{
		Date:      command.Date(),
		Summaries: make([]CycleSummary, 0, len(warehouses)),
	}

	for _, wh := range warehouses {
		cycleCmd, cmdErr := NewAllocateOrdersCommand(wh.ID(), command.Date())
		if cmdErr != nil {
			return report, cmdErr
		}

		summary, cycleErr := h.cycleHandler.Handle(ctx, cycleCmd)
		if cycleErr != nil {
			h.logger.ErrorContext(ctx, "Warehouse allocation cycle failed",
				"warehouse_id", wh.ID().String(),
				"warehouse_name", wh.Name(),
				"error", cycleErr,
			)
			report.FailedWarehouses = append(report.FailedWarehouses, wh.ID().String())
			continue
		}

		report.Summaries = append(report.Summaries, summary)
		report.TotalAssigned += summary.Assigned
		report.TotalDeferred += summary.Deferred
		report.TotalCost += summary.TotalCost

		h.logger.InfoContext(ctx, "Warehouse allocation cycle completed",
			"warehouse_name", wh.Name(),
			"assigned", summary.Assigned,
			"deferred", summary.Deferred,
		)
	}

	return report, nil
}
