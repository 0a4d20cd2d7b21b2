package queries

import (
	"context"
	"math"

	"allocation/internal/core/domain/model/order"
	"allocation/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetDailySummaryQueryHandler builds the daily report from the metrics and
// orders tables directly. Tier boundaries mirror the domain's utilization
// thresholds.
//
// Example:
//
//	handler := NewGetDailySummaryQueryHandler(db)
//	query, _ := NewGetDailySummaryQuery(time.Now())
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to build daily summary: %v", err)
//	    return err
//	}
//	fmt.Printf("%d orders across %d agents\n", summary.TotalOrders, summary.TotalAgents)
type GetDailySummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetDailySummaryQueryHandler creates a handler for daily summary queries.
// Requires a GORM database connection for query execution.
func NewGetDailySummaryQueryHandler(db *gorm.DB) GetDailySummaryQueryHandler {
	return GetDailySummaryQueryHandler{db: db}
}

// Handle executes the daily summary query.
// Aggregates the day's metrics rows in one pass, counts deferred orders
// created that day, and derives the per-agent averages and cost per order.
func (h GetDailySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDailySummaryQuery,
) (GetDailySummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailySummaryQueryResponse{}, err
	}

	reportDate := query.Date().UTC().Format("2006-01-02")
	response := GetDailySummaryQueryResponse{ReportDate: reportDate}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)                                                        AS total_agents,
			COALESCE(SUM(total_orders), 0)                                  AS total_orders,
			COALESCE(SUM(total_distance_km), 0)                             AS total_distance,
			COALESCE(SUM(total_earnings), 0)                                AS total_earnings,
			COUNT(*) FILTER (WHERE total_orders >= ?)                       AS high_performers,
			COUNT(*) FILTER (WHERE total_orders >= ? AND total_orders < ?)  AS medium_performers,
			COUNT(*) FILTER (WHERE total_orders < ?)                        AS low_performers
		FROM agent_daily_metrics
		WHERE date = ?
	`,
		services.HighPerformerMinOrders,
		services.MediumPerformerMinOrders,
		services.HighPerformerMinOrders,
		services.MediumPerformerMinOrders,
		reportDate,
	).Row()

	err := row.Scan(
		&response.TotalAgents,
		&response.TotalOrders,
		&response.TotalDistanceKm,
		&response.TotalEarnings,
		&response.HighPerformers,
		&response.MediumPerformers,
		&response.LowPerformers,
	)
	if err != nil {
		return GetDailySummaryQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE status = ? AND DATE(created_date) = ?
	`, order.Deferred.String(), reportDate).Row().Scan(&response.DeferredOrders)
	if err != nil {
		return GetDailySummaryQueryResponse{}, err
	}

	response.TotalDistanceKm = round2(response.TotalDistanceKm)
	response.TotalEarnings = round2(response.TotalEarnings)

	if response.TotalAgents > 0 {
		agents := float64(response.TotalAgents)
		response.AvgOrdersPerAgent = round2(float64(response.TotalOrders) / agents)
		response.AvgDistancePerAgent = round2(response.TotalDistanceKm / agents)
		response.AvgEarningsPerAgent = round2(response.TotalEarnings / agents)
	}

	if response.TotalOrders > 0 {
		response.CostPerOrder = round2(response.TotalEarnings / float64(response.TotalOrders))
	}

	return response, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
