package services_test

import (
	"testing"
	"time"

	"allocation/internal/core/domain/model/agent"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricsWithOrders(t *testing.T, orders int) *agent.DailyMetrics {
	t.Helper()
	metrics, err := agent.RestoreDailyMetrics(
		kernel.NewUUID(), time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), orders, 0, 0)
	require.NoError(t, err)
	return metrics
}

func TestMetricsAggregator_Utilization(t *testing.T) {
	aggregator := services.NewMetricsAggregator()

	t.Run("classifies agents into tiers", func(t *testing.T) {
		high := metricsWithOrders(t, 50)
		medium := metricsWithOrders(t, 25)
		almostMedium := metricsWithOrders(t, 24)
		idle := metricsWithOrders(t, 0)

		report := aggregator.Utilization(map[kernel.UUID]*agent.DailyMetrics{
			high.AgentID():         high,
			medium.AgentID():       medium,
			almostMedium.AgentID(): almostMedium,
			idle.AgentID():         idle,
		})

		assert.Equal(t, 99, report.TotalOrders)
		assert.Equal(t, 1, report.HighPerformers)
		assert.Equal(t, 1, report.MediumPerformers)
		assert.Equal(t, 2, report.LowPerformers)
		assert.InDelta(t, 24.75, report.AvgOrdersPerAgent, 1e-9)
	})

	t.Run("empty map yields zero report", func(t *testing.T) {
		report := aggregator.Utilization(map[kernel.UUID]*agent.DailyMetrics{})

		assert.Equal(t, 0, report.TotalOrders)
		assert.Equal(t, 0, report.HighPerformers)
		assert.Equal(t, 0, report.MediumPerformers)
		assert.Equal(t, 0, report.LowPerformers)
		assert.InDelta(t, 0.0, report.AvgOrdersPerAgent, 1e-9)
	})
}

func TestMetricsAggregator_TotalCost(t *testing.T) {
	aggregator := services.NewMetricsAggregator()

	t.Run("sums tiered earnings across agents", func(t *testing.T) {
		high := metricsWithOrders(t, 50) // 50 * 42 = 2100
		idle := metricsWithOrders(t, 0)  // minimum pay 500

		total := aggregator.TotalCost(map[kernel.UUID]*agent.DailyMetrics{
			high.AgentID(): high,
			idle.AgentID(): idle,
		})

		assert.InDelta(t, 2600.0, total, 1e-9)
	})

	t.Run("empty map costs nothing", func(t *testing.T) {
		total := aggregator.TotalCost(map[kernel.UUID]*agent.DailyMetrics{})

		assert.InDelta(t, 0.0, total, 1e-9)
	})
}
