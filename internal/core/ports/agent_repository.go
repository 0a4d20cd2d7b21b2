package ports

import (
	"context"

	"allocation/internal/core/domain/model/agent"
	"allocation/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for agent aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	Add(ctx context.Context, agent *agent.Agent) error

	// Update persists changes to an existing agent aggregate.
	Update(ctx context.Context, agent *agent.Agent) error

	// Get retrieves an agent by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetAvailable retrieves the active, checked-in agents of a warehouse,
	// ordered by employee ID ascending. The ordering is part of the
	// contract: the allocation scan prefers earlier agents, so a stable
	// fetch order keeps cycle results reproducible.
	GetAvailable(ctx context.Context, warehouseID kernel.UUID) ([]*agent.Agent, error)
}
