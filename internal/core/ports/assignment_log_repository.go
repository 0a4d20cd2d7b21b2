package ports

import (
	"context"

	"allocation/internal/core/domain/model/assignment"
)

// AssignmentLogRepository defines the persistence contract for the
// append-only assignment audit log. Entries are only ever inserted; the
// (agent, order, assignment date) triple is unique.
type AssignmentLogRepository interface {
	// Add appends a new assignment log entry.
	Add(ctx context.Context, log *assignment.Log) error
}
