package assignmentlogrepo

import (
	"context"

	"allocation/internal/core/domain/model/assignment"
	"allocation/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAssignmentLogRepository implements AssignmentLogRepository using GORM.
type GormAssignmentLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentLogRepository creates a new GORM assignment log repository.
func NewGormAssignmentLogRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentLogRepository {
	return &GormAssignmentLogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new assignment log entry.
func (r *GormAssignmentLogRepository) Add(ctx context.Context, log *assignment.Log) error {
	if err := log.Validate(); err != nil {
		return err
	}

	dto := fromDomain(log)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(log.ID(), log)
	return nil
}
