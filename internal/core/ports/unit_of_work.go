package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command. This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the current
// transaction. Client code must explicitly manage the transaction
// lifecycle; the allocation cycle opens one transaction per order so each
// (order + metrics + log) write group commits or rolls back as a unit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// WarehouseRepository returns a WarehouseRepository bound to the
	// current transaction, or to the base connection when none is active.
	WarehouseRepository() WarehouseRepository

	// AgentRepository returns an AgentRepository bound to the current
	// transaction, or to the base connection when none is active.
	AgentRepository() AgentRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction, or to the base connection when none is active.
	OrderRepository() OrderRepository

	// MetricsRepository returns a MetricsRepository bound to the current
	// transaction, or to the base connection when none is active.
	MetricsRepository() MetricsRepository

	// AssignmentLogRepository returns an AssignmentLogRepository bound to
	// the current transaction, or to the base connection when none is
	// active.
	AssignmentLogRepository() AssignmentLogRepository
}
