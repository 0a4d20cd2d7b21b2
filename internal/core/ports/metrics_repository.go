package ports

import (
	"context"
	"time"

	"allocation/internal/core/domain/model/agent"
	"allocation/internal/core/domain/model/kernel"
)

// MetricsRepository defines the persistence contract for per-(agent, date)
// daily metrics records. Earnings are recomputed from the aggregate on every
// write, never patched in place.
type MetricsRepository interface {
	// GetOrCreate returns the metrics record for (agentID, date), creating
	// a zeroed record on first touch. Exactly one record exists per key.
	GetOrCreate(ctx context.Context, agentID kernel.UUID, date time.Time) (*agent.DailyMetrics, error)

	// Update persists the current counters and derived earnings of an
	// existing metrics record.
	Update(ctx context.Context, metrics *agent.DailyMetrics) error
}
