package queries

import (
	"context"

	"allocation/internal/core/domain/services"

	"gorm.io/gorm"
)

// Performance tier labels of the agent report.
const (
	TierHigh   = "High"
	TierMedium = "Medium"
	TierLow    = "Low"
)

// GetAgentPerformanceQueryHandler aggregates an agent's daily metrics rows
// over a date range into one performance report.
//
// Example:
//
//	handler := NewGetAgentPerformanceQueryHandler(db)
//	query, _ := NewGetAgentPerformanceQuery(agentID, from, to)
//
//	performance, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Tier: %s (%0.1f orders/day)\n",
//	    performance.PerformanceTier, performance.AvgOrdersPerDay)
type GetAgentPerformanceQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentPerformanceQueryHandler creates a handler for agent performance
// queries. Requires a GORM database connection for query execution.
func NewGetAgentPerformanceQueryHandler(db *gorm.DB) GetAgentPerformanceQueryHandler {
	return GetAgentPerformanceQueryHandler{db: db}
}

// Handle executes the agent performance query.
// An agent with no metrics rows in the range reports zero totals and the low
// tier. The tier is derived from average orders per worked day using the
// domain's utilization thresholds.
func (h GetAgentPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetAgentPerformanceQuery,
) (GetAgentPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAgentPerformanceQueryResponse{}, err
	}

	startDate := query.StartDate().UTC().Format("2006-01-02")
	endDate := query.EndDate().UTC().Format("2006-01-02")

	response := GetAgentPerformanceQueryResponse{
		AgentID:         query.AgentID(),
		Period:          startDate + " to " + endDate,
		PerformanceTier: TierLow,
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)                            AS total_days,
			COALESCE(SUM(total_orders), 0)      AS total_orders,
			COALESCE(SUM(total_earnings), 0)    AS total_earnings,
			COALESCE(SUM(total_distance_km), 0) AS total_distance
		FROM agent_daily_metrics
		WHERE agent_id = ? AND date >= ? AND date <= ?
	`, query.AgentID().Bytes(), startDate, endDate).Row()

	err := row.Scan(
		&response.TotalDaysWorked,
		&response.TotalOrdersDelivered,
		&response.TotalEarnings,
		&response.TotalDistanceKm,
	)
	if err != nil {
		return GetAgentPerformanceQueryResponse{}, err
	}

	response.TotalEarnings = round2(response.TotalEarnings)
	response.TotalDistanceKm = round2(response.TotalDistanceKm)

	if response.TotalDaysWorked == 0 {
		return response, nil
	}

	days := float64(response.TotalDaysWorked)
	response.AvgOrdersPerDay = round2(float64(response.TotalOrdersDelivered) / days)
	response.AvgEarningsPerDay = round2(response.TotalEarnings / days)

	switch {
	case response.AvgOrdersPerDay >= services.HighPerformerMinOrders:
		response.PerformanceTier = TierHigh
	case response.AvgOrdersPerDay >= services.MediumPerformerMinOrders:
		response.PerformanceTier = TierMedium
	}

	return response, nil
}
