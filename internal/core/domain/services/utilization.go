package services

import (
	"allocation/internal/core/domain/model/agent"
	"allocation/internal/core/domain/model/kernel"
)

// Utilization tier thresholds, in orders per agent per day.
const (
	// HighPerformerMinOrders is the lower bound of the high tier.
	HighPerformerMinOrders = 50
	// MediumPerformerMinOrders is the lower bound of the medium tier.
	MediumPerformerMinOrders = 25
)

// UtilizationReport summarizes how evenly a cycle loaded its agents.
type UtilizationReport struct {
	TotalOrders       int     `json:"total_orders"`
	HighPerformers    int     `json:"high_performers"`
	MediumPerformers  int     `json:"medium_performers"`
	LowPerformers     int     `json:"low_performers"`
	AvgOrdersPerAgent float64 `json:"avg_orders_per_agent"`
}

// MetricsAggregator is a domain service that summarizes a cycle's outcome
// from the final per-agent metrics: utilization tiers and total daily cost.
type MetricsAggregator struct{}

// NewMetricsAggregator creates a new MetricsAggregator instance.
func NewMetricsAggregator() MetricsAggregator {
	return MetricsAggregator{}
}

// Utilization computes the tier breakdown from the final metrics map.
// Agents fall in the high tier at >=50 orders, medium at 25-49, low below.
// The average is 0 when no agents participated.
func (MetricsAggregator) Utilization(metricsByAgent map[kernel.UUID]*agent.DailyMetrics) UtilizationReport {
	var report UtilizationReport

	for _, metrics := range metricsByAgent {
		report.TotalOrders += metrics.TotalOrders()

		switch {
		case metrics.TotalOrders() >= HighPerformerMinOrders:
			report.HighPerformers++
		case metrics.TotalOrders() >= MediumPerformerMinOrders:
			report.MediumPerformers++
		default:
			report.LowPerformers++
		}
	}

	if len(metricsByAgent) > 0 {
		report.AvgOrdersPerAgent = float64(report.TotalOrders) / float64(len(metricsByAgent))
	}

	return report
}

// TotalCost sums the earnings of all agents for the day.
func (MetricsAggregator) TotalCost(metricsByAgent map[kernel.UUID]*agent.DailyMetrics) float64 {
	var total float64
	for _, metrics := range metricsByAgent {
		total += metrics.Earnings()
	}
	return total
}
