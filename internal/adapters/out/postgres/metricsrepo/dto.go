// Package metricsrepo provides data transfer objects and mapping functions
// for per-(agent, date) daily metrics persistence. Earnings are derived from
// the domain aggregate on every write, never patched directly.
package metricsrepo

import (
	"math"
	"time"

	"allocation/internal/core/domain/model/agent"
	"allocation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DailyMetricsDTO represents the database structure for persisting daily
// metrics records. The composite primary key enforces exactly one record per
// (agent, date).
type DailyMetricsDTO struct {
	AgentID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date              time.Time `gorm:"type:date;primaryKey"`
	TotalOrders       int       `gorm:"not null;default:0"`
	TotalDistanceKm   float64   `gorm:"type:decimal(10,2);not null;default:0"`
	TotalWorkingHours float64   `gorm:"type:decimal(6,2);not null;default:0"`
	TotalEarnings     float64   `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName specifies the database table name for daily metrics records.
func (DailyMetricsDTO) TableName() string {
	return "agent_daily_metrics"
}

// fromDomain converts a metrics record to its database representation.
// Distance and hours are rounded to two decimal places on the way out, and
// earnings are recomputed from the aggregate's order count.
func fromDomain(metrics *agent.DailyMetrics) DailyMetricsDTO {
	return DailyMetricsDTO{
		AgentID:           metrics.AgentID().Bytes(),
		Date:              metrics.Date(),
		TotalOrders:       metrics.TotalOrders(),
		TotalDistanceKm:   round2(metrics.TotalDistanceKm()),
		TotalWorkingHours: round2(metrics.TotalWorkingHours()),
		TotalEarnings:     round2(metrics.Earnings()),
	}
}

// toDomain converts a database DTO to a metrics record.
func toDomain(dto DailyMetricsDTO) (*agent.DailyMetrics, error) {
	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	return agent.RestoreDailyMetrics(
		agentID,
		dto.Date,
		dto.TotalOrders,
		dto.TotalDistanceKm,
		dto.TotalWorkingHours,
	)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
