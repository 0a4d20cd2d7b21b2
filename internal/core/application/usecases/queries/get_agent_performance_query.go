package queries

import (
	"errors"
	"time"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/errs"
	"allocation/internal/pkg/guard"
)

var ErrGetAgentPerformanceQueryIsNotConstructed = errors.New(
	"GetAgentPerformanceQuery must be created via NewGetAgentPerformanceQuery constructor",
)

// GetAgentPerformanceQuery retrieves an agent's aggregated performance over
// an inclusive date range: days worked, totals, per-day averages and the
// resulting performance tier.
//
// Example:
//
//	query, err := NewGetAgentPerformanceQuery(agentID, from, to)
//	if err != nil {
//	    return err
//	}
//	performance, err := handler.Handle(ctx, query)
type GetAgentPerformanceQuery struct {
	agentID   kernel.UUID
	startDate time.Time
	endDate   time.Time

	guard guard.ConstructorGuard
}

// NewGetAgentPerformanceQuery creates a performance query for the agent over
// [startDate, endDate]. The range must be non-empty and correctly ordered.
func NewGetAgentPerformanceQuery(
	agentID kernel.UUID,
	startDate, endDate time.Time,
) (GetAgentPerformanceQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentPerformanceQuery{}, err
	}

	if startDate.IsZero() {
		return GetAgentPerformanceQuery{}, errs.NewValueIsRequiredError("start date")
	}

	if endDate.IsZero() {
		return GetAgentPerformanceQuery{}, errs.NewValueIsRequiredError("end date")
	}

	if endDate.Before(startDate) {
		return GetAgentPerformanceQuery{}, errs.NewValueIsInvalidError("end date is before start date")
	}

	return GetAgentPerformanceQuery{
		agentID:   agentID,
		startDate: startDate,
		endDate:   endDate,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// AgentID returns the agent the query reports on.
func (q GetAgentPerformanceQuery) AgentID() kernel.UUID {
	return q.agentID
}

// StartDate returns the inclusive lower bound of the reporting period.
func (q GetAgentPerformanceQuery) StartDate() time.Time {
	return q.startDate
}

// EndDate returns the inclusive upper bound of the reporting period.
func (q GetAgentPerformanceQuery) EndDate() time.Time {
	return q.endDate
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentPerformanceQueryIsNotConstructed if validation fails.
func (q GetAgentPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentPerformanceQueryIsNotConstructed)
}

// GetAgentPerformanceQueryResponse is the per-agent performance read model.
type GetAgentPerformanceQueryResponse struct {
	AgentID              kernel.UUID `json:"agent_id"`
	Period               string      `json:"period"`
	TotalDaysWorked      int         `json:"total_days_worked"`
	TotalOrdersDelivered int         `json:"total_orders_delivered"`
	TotalEarnings        float64     `json:"total_earnings"`
	TotalDistanceKm      float64     `json:"total_distance_km"`
	AvgOrdersPerDay      float64     `json:"avg_orders_per_day"`
	AvgEarningsPerDay    float64     `json:"avg_earnings_per_day"`
	PerformanceTier      string      `json:"performance_tier"`
}
