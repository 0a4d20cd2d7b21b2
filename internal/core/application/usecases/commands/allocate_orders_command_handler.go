package commands

import (
	"context"
	"time"

	"allocation/internal/core/domain/model/agent"
	"allocation/internal/core/domain/model/assignment"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/services"
)

// CycleSummary reports the outcome of one allocation cycle for a warehouse:
// how many pending orders were resolved each way, the utilization tier
// breakdown and the total daily cost of the participating agents.
type CycleSummary struct {
	WarehouseID   kernel.UUID                `json:"warehouse_id"`
	WarehouseName string                     `json:"warehouse_name"`
	Date          time.Time                  `json:"date"`
	AgentCount    int                        `json:"agent_count"`
	PendingOrders int                        `json:"pending_orders"`
	Assigned      int                        `json:"assigned"`
	Deferred      int                        `json:"deferred"`
	Utilization   services.UtilizationReport `json:"utilization"`
	TotalCost     float64                    `json:"total_cost"`
}

// AllocateOrdersCommandHandler runs the allocation cycle for one warehouse.
// It ranks pending orders by score, matches them greedily against checked-in
// agents, and persists each (order + metrics + log) write group in its own
// transaction so a failed write leaves that order pending for a future run.
//
// Example:
//
//	handler := NewAllocateOrdersCommandHandler(uowFactory)
//	cmd, _ := NewAllocateOrdersCommand(warehouseID, time.Now())
//	summary, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Allocation cycle failed: %v", err)
//	    return err
//	}
//	log.Printf("Assigned %d, deferred %d", summary.Assigned, summary.Deferred)
type AllocateOrdersCommandHandler struct {
	uowFactory AllocationUoWFactory
	allocator  services.Allocator
	aggregator services.MetricsAggregator
}

// NewAllocateOrdersCommandHandler creates a handler for allocation cycles.
// Requires an AllocationUoWFactory for per-order transactional writes.
func NewAllocateOrdersCommandHandler(uowFactory AllocationUoWFactory) AllocateOrdersCommandHandler {
	return AllocateOrdersCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewAllocator(),
		aggregator: services.NewMetricsAggregator(),
	}
}

// Handle processes one allocation cycle.
//
// The cycle reads the warehouse, its checked-in agents, their metrics for the
// cycle date and the pending orders outside any transaction, then resolves
// each order in score order. Every resolution - assignment or deferral - is
// committed in its own transaction. A persistence failure rolls back only the
// current order's write group and aborts the cycle with an error; the order
// stays pending, so re-running the cycle is safe.
func (h AllocateOrdersCommandHandler) Handle(
	ctx context.Context,
	command AllocateOrdersCommand,
) (CycleSummary, error) {
	if err := command.Validate(); err != nil {
		return CycleSummary{}, err
	}

	uow := h.uowFactory.Create()

	wh, err := uow.WarehouseRepository().Get(ctx, command.WarehouseID())
	if err != nil {
		return CycleSummary{}, err
	}

	agents, err := uow.AgentRepository().GetAvailable(ctx, wh.ID())
	if err != nil {
		return CycleSummary{}, err
	}

	orders, err := uow.OrderRepository().GetPendingByWarehouse(ctx, wh.ID())
	if err != nil {
		return CycleSummary{}, err
	}

	summary := CycleSummary{
		WarehouseID:   wh.ID(),
		WarehouseName: wh.Name(),
		Date:          command.Date(),
		AgentCount:    len(agents),
		PendingOrders: len(orders),
	}

	metricsByAgent := make(map[kernel.UUID]*agent.DailyMetrics, len(agents))
	for _, candidate := range agents {
		metrics, metricsErr := uow.MetricsRepository().GetOrCreate(ctx, candidate.ID(), command.Date())
		if metricsErr != nil {
			return CycleSummary{}, metricsErr
		}
		metricsByAgent[candidate.ID()] = metrics
	}

	scored, err := h.allocator.RankOrders(orders, wh)
	if err != nil {
		return CycleSummary{}, err
	}

	for _, candidate := range scored {
		selected, found, selectErr := h.allocator.SelectAgent(agents, metricsByAgent, candidate.DistanceKm)
		if selectErr != nil {
			return summary, selectErr
		}

		if !found {
			if deferErr := h.deferOrder(ctx, uow, candidate); deferErr != nil {
				return summary, deferErr
			}
			summary.Deferred++
			continue
		}

		if assignErr := h.assignOrder(ctx, uow, candidate, selected, metricsByAgent[selected.ID()], command.Date()); assignErr != nil {
			return summary, assignErr
		}
		summary.Assigned++
	}

	summary.Utilization = h.aggregator.Utilization(metricsByAgent)
	summary.TotalCost = h.aggregator.TotalCost(metricsByAgent)

	return summary, nil
}

// assignOrder commits the three writes of a successful match as one
// transaction. On failure the in-memory metrics increment is compensated so
// later orders in the same cycle do not see phantom load.
func (h AllocateOrdersCommandHandler) assignOrder(
	ctx context.Context,
	uow AllocationUoW,
	candidate services.ScoredOrder,
	selected *agent.Agent,
	metrics *agent.DailyMetrics,
	date time.Time,
) error {
	if err := candidate.Order.Assign(selected.ID(), date); err != nil {
		return err
	}

	if err := metrics.RecordAssignment(candidate.DistanceKm); err != nil {
		return err
	}

	logEntry, err := assignment.NewLog(
		kernel.NewUUID(),
		selected.ID(),
		candidate.Order.ID(),
		date,
		candidate.DistanceKm,
	)
	if err != nil {
		metrics.RevertAssignment(candidate.DistanceKm)
		return err
	}

	if err = uow.Begin(ctx); err != nil {
		metrics.RevertAssignment(candidate.DistanceKm)
		return err
	}

	err = h.writeAssignment(ctx, uow, candidate, metrics, logEntry)
	if err != nil {
		_ = uow.Rollback(ctx)
		metrics.RevertAssignment(candidate.DistanceKm)
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		_ = uow.Rollback(ctx)
		metrics.RevertAssignment(candidate.DistanceKm)
		return err
	}

	return nil
}

func (h AllocateOrdersCommandHandler) writeAssignment(
	ctx context.Context,
	uow AllocationUoW,
	candidate services.ScoredOrder,
	metrics *agent.DailyMetrics,
	logEntry *assignment.Log,
) error {
	if err := uow.OrderRepository().Update(ctx, candidate.Order); err != nil {
		return err
	}

	if err := uow.MetricsRepository().Update(ctx, metrics); err != nil {
		return err
	}

	if err := uow.AssignmentLogRepository().Add(ctx, logEntry); err != nil {
		return err
	}

	return nil
}

// deferOrder transitions an unmatchable order to deferred. The single status
// write still runs in its own transaction so the cycle's failure semantics
// stay uniform.
func (h AllocateOrdersCommandHandler) deferOrder(
	ctx context.Context,
	uow AllocationUoW,
	candidate services.ScoredOrder,
) error {
	if err := candidate.Order.Defer(); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, candidate.Order); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	return nil
}
