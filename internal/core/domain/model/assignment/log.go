// Package assignment provides the append-only audit record written for every
// successful order-to-agent match. At most one log entry exists per
// (agent, order, assignment date) triple; entries are never updated.
package assignment

import (
	"errors"
	"time"

	"allocation/internal/core/domain/model/agent"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/errs"
	"allocation/internal/pkg/guard"
)

// ErrLogIsNotConstructed is returned when using an improperly initialized Log.
var ErrLogIsNotConstructed = errors.New("Log must be created via NewLog constructor")

// Log records one successful assignment: which agent took which order on
// which date, the distance from the warehouse and the estimated delivery
// time derived from it.
type Log struct {
	id               kernel.UUID
	agentID          kernel.UUID
	orderID          kernel.UUID
	assignmentDate   time.Time
	distanceKm       float64
	estimatedMinutes int
	guard            guard.ConstructorGuard
}

// NewLog creates a Log entry for a successful match. The estimated delivery
// time is derived from the distance at 5 minutes per km, rounded down to
// whole minutes.
func NewLog(
	id kernel.UUID,
	agentID, orderID kernel.UUID,
	assignmentDate time.Time,
	distanceKm float64,
) (*Log, error) {
	if err := errors.Join(id.Validate(), agentID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	if assignmentDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("assignment date")
	}

	if distanceKm < 0 {
		return nil, errs.NewValueIsInvalidError("distance must not be negative")
	}

	return &Log{
		id:               id,
		agentID:          agentID,
		orderID:          orderID,
		assignmentDate:   assignmentDate,
		distanceKm:       distanceKm,
		estimatedMinutes: agent.EstimatedDeliveryMinutes(distanceKm),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestoreLog reconstructs a Log entry from persistent storage, keeping the
// persisted estimate rather than rederiving it.
func RestoreLog(
	id kernel.UUID,
	agentID, orderID kernel.UUID,
	assignmentDate time.Time,
	distanceKm float64,
	estimatedMinutes int,
) (*Log, error) {
	log, err := NewLog(id, agentID, orderID, assignmentDate, distanceKm)
	if err != nil {
		return nil, err
	}

	log.estimatedMinutes = estimatedMinutes
	return log, nil
}

// Validate ensures the Log was created via its constructor.
func (l *Log) Validate() error {
	if l == nil {
		return ErrLogIsNotConstructed
	}
	return l.guard.Validate(ErrLogIsNotConstructed)
}

// ID returns the log entry's unique identifier.
func (l *Log) ID() kernel.UUID {
	return l.id
}

// AgentID returns the identifier of the assigned agent.
func (l *Log) AgentID() kernel.UUID {
	return l.agentID
}

// OrderID returns the identifier of the assigned order.
func (l *Log) OrderID() kernel.UUID {
	return l.orderID
}

// AssignmentDate returns the date the match was made.
func (l *Log) AssignmentDate() time.Time {
	return l.assignmentDate
}

// DistanceKm returns the warehouse-to-customer distance of the match.
func (l *Log) DistanceKm() float64 {
	return l.distanceKm
}

// EstimatedMinutes returns the estimated delivery time in whole minutes.
func (l *Log) EstimatedMinutes() int {
	return l.estimatedMinutes
}
