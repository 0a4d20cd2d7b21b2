// Package assignmentlogrepo provides data transfer objects and mapping
// functions for the append-only assignment audit log.
package assignmentlogrepo

import (
	"math"
	"time"

	"allocation/internal/core/domain/model/assignment"

	"github.com/google/uuid"
)

// AssignmentLogDTO represents the database structure for assignment log
// entries. The composite unique index forbids duplicate matches for the same
// agent, order and day.
type AssignmentLogDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgentID          uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_assignment_log_match"`
	OrderID          uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_assignment_log_match"`
	AssignmentDate   time.Time `gorm:"type:date;uniqueIndex:idx_assignment_log_match"`
	DistanceKm       float64   `gorm:"type:decimal(8,2);not null"`
	EstimatedMinutes int       `gorm:"not null"`
}

// TableName specifies the database table name for assignment log entries.
func (AssignmentLogDTO) TableName() string {
	return "assignment_logs"
}

// fromDomain converts a log entry to its database representation. The
// distance is rounded to two decimal places; the assignment date is truncated
// to the day.
func fromDomain(log *assignment.Log) AssignmentLogDTO {
	date := log.AssignmentDate().UTC()
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	return AssignmentLogDTO{
		ID:               log.ID().Bytes(),
		AgentID:          log.AgentID().Bytes(),
		OrderID:          log.OrderID().Bytes(),
		AssignmentDate:   date,
		DistanceKm:       math.Round(log.DistanceKm()*100) / 100,
		EstimatedMinutes: log.EstimatedMinutes(),
	}
}
