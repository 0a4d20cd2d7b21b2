package metricsrepo

import (
	"context"
	"errors"
	"time"

	"allocation/internal/core/domain/model/agent"
	"allocation/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormMetricsRepository implements MetricsRepository using GORM.
type GormMetricsRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMetricsRepository creates a new GORM daily metrics repository.
func NewGormMetricsRepository(db *gorm.DB, tracker aggregateTracker) *GormMetricsRepository {
	return &GormMetricsRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetOrCreate returns the metrics record for (agentID, date), inserting a
// zeroed record on first touch. The date is normalized to midnight UTC by the
// domain constructor so lookups and inserts agree on the key.
func (r *GormMetricsRepository) GetOrCreate(
	ctx context.Context,
	agentID kernel.UUID,
	date time.Time,
) (*agent.DailyMetrics, error) {
	fresh, err := agent.NewDailyMetrics(agentID, date)
	if err != nil {
		return nil, err
	}

	var dto DailyMetricsDTO
	err = r.db.WithContext(ctx).
		First(&dto, "agent_id = ? AND date = ?", agentID.Bytes(), fresh.Date()).Error
	if err == nil {
		return toDomain(dto)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	dto = fromDomain(fresh)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(agentID, fresh)
	return fresh, nil
}

// Update persists the counters of an existing metrics record, recomputing
// earnings from the aggregate on the way out.
func (r *GormMetricsRepository) Update(ctx context.Context, metrics *agent.DailyMetrics) error {
	if err := metrics.Validate(); err != nil {
		return err
	}

	dto := fromDomain(metrics)
	result := r.db.WithContext(ctx).
		Model(&DailyMetricsDTO{}).
		Where("agent_id = ? AND date = ?", dto.AgentID, dto.Date).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(metrics.AgentID(), metrics)
	return nil
}
