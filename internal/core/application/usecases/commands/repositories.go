// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"allocation/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// AgentRepoFactory provides access to the agent repository within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MetricsRepoFactory provides access to the daily metrics repository within a transaction.
	MetricsRepoFactory interface {
		MetricsRepository() ports.MetricsRepository
	}

	// AssignmentLogRepoFactory provides access to the assignment log repository within a transaction.
	AssignmentLogRepoFactory interface {
		AssignmentLogRepository() ports.AssignmentLogRepository
	}

	// AllocationUoW manages transactions across all aggregates touched by an
	// allocation cycle: orders, agent metrics and the assignment log, plus
	// read access to warehouses and agents.
	//
	// The cycle opens one transaction per order so that each
	// (order + metrics + log) write group commits or rolls back atomically:
	//
	//	uow := factory.Create()
	//	for _, scored := range rankedOrders {
	//	    err := uow.Begin(ctx)
	//	    // ... write order, metrics and log entry
	//	    err = uow.Commit(ctx)
	//	}
	AllocationUoW interface {
		TxManager
		WarehouseRepoFactory
		AgentRepoFactory
		OrderRepoFactory
		MetricsRepoFactory
		AssignmentLogRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}
)
