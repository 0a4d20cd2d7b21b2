package agent

import (
	"errors"
	"time"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/errs"
	"allocation/internal/pkg/guard"
)

// Constraint ceilings applied to every agent for a single working day.
const (
	// MaxDistanceKm is the hard ceiling on the total distance an agent may
	// travel in one day.
	MaxDistanceKm = 100.0
	// MaxWorkingHours is the hard ceiling on an agent's working time per day.
	MaxWorkingHours = 10.0
	// MinutesPerKm converts delivery distance to travel time.
	MinutesPerKm = 5.0
)

// Earnings tiers. Earnings are a pure function of the day's total orders and
// are recomputed from scratch on every change, never patched incrementally.
const (
	highTierMinOrders   = 50
	highTierRatePerItem = 42.0
	midTierMinOrders    = 25
	midTierRatePerItem  = 35.0
	baseRatePerItem     = 20.0
	minimumDailyPay     = 500.0
)

// ErrMetricsAreNotConstructed is returned when using improperly initialized DailyMetrics.
var ErrMetricsAreNotConstructed = errors.New(
	"DailyMetrics must be created via NewDailyMetrics or RestoreDailyMetrics constructor")

// RejectionReason explains why a candidate order cannot be assigned to an
// agent. RejectionNone accompanies every successful admission check.
type RejectionReason int

const (
	// RejectionNone means the assignment is admissible.
	RejectionNone RejectionReason = iota
	// RejectionDistanceLimit means the assignment would exceed MaxDistanceKm.
	RejectionDistanceLimit
	// RejectionHoursLimit means the assignment would exceed MaxWorkingHours.
	RejectionHoursLimit
)

// String returns the human-readable name of the rejection reason.
func (r RejectionReason) String() string {
	switch r {
	case RejectionNone:
		return "none"
	case RejectionDistanceLimit:
		return "distance limit exceeded"
	case RejectionHoursLimit:
		return "working hours limit exceeded"
	default:
		return "unknown"
	}
}

// DailyMetrics is the running accumulator of an agent's workload for one
// date. Exactly one record exists per (agent, date); it is created zeroed on
// first touch in a cycle and then monotonically incremented for every order
// assigned to the agent that day.
//
// The accumulator is scoped to a single warehouse-cycle invocation and must
// not be shared across concurrent cycles.
type DailyMetrics struct {
	agentID           kernel.UUID
	date              time.Time
	totalOrders       int
	totalDistanceKm   float64
	totalWorkingHours float64
	guard             guard.ConstructorGuard
}

// NewDailyMetrics creates a zeroed accumulator for the agent and date.
// The date is truncated to midnight UTC so (agent, date) keys compare stably.
func NewDailyMetrics(agentID kernel.UUID, date time.Time) (*DailyMetrics, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	return &DailyMetrics{
		agentID: agentID,
		date:    truncateToDate(date),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreDailyMetrics reconstructs a DailyMetrics record from persistent
// storage with its accumulated counters.
func RestoreDailyMetrics(
	agentID kernel.UUID,
	date time.Time,
	totalOrders int,
	totalDistanceKm, totalWorkingHours float64,
) (*DailyMetrics, error) {
	metrics, err := NewDailyMetrics(agentID, date)
	if err != nil {
		return nil, err
	}

	if totalOrders < 0 || totalDistanceKm < 0 || totalWorkingHours < 0 {
		return nil, errs.NewValueIsInvalidError("metrics counters must not be negative")
	}

	metrics.totalOrders = totalOrders
	metrics.totalDistanceKm = totalDistanceKm
	metrics.totalWorkingHours = totalWorkingHours
	return metrics, nil
}

// Validate ensures the DailyMetrics record was created via a constructor.
func (m *DailyMetrics) Validate() error {
	if m == nil {
		return ErrMetricsAreNotConstructed
	}
	return m.guard.Validate(ErrMetricsAreNotConstructed)
}

// AgentID returns the identifier of the agent the record belongs to.
func (m *DailyMetrics) AgentID() kernel.UUID {
	return m.agentID
}

// Date returns the working day the record covers, truncated to midnight UTC.
func (m *DailyMetrics) Date() time.Time {
	return m.date
}

// TotalOrders returns the number of orders assigned to the agent today.
func (m *DailyMetrics) TotalOrders() int {
	return m.totalOrders
}

// TotalDistanceKm returns the accumulated delivery distance in kilometers.
func (m *DailyMetrics) TotalDistanceKm() float64 {
	return m.totalDistanceKm
}

// TotalWorkingHours returns the accumulated travel time in hours.
func (m *DailyMetrics) TotalWorkingHours() float64 {
	return m.totalWorkingHours
}

// Earnings returns the agent's pay for the day under the tiered scheme:
//
//	totalOrders >= 50: totalOrders * 42
//	totalOrders >= 25: totalOrders * 35
//	otherwise:         max(totalOrders * 20, 500)
//
// The value is derived from TotalOrders on every call, so it is always
// consistent with the current counter.
func (m *DailyMetrics) Earnings() float64 {
	switch {
	case m.totalOrders >= highTierMinOrders:
		return float64(m.totalOrders) * highTierRatePerItem
	case m.totalOrders >= midTierMinOrders:
		return float64(m.totalOrders) * midTierRatePerItem
	default:
		base := float64(m.totalOrders) * baseRatePerItem
		if base < minimumDailyPay {
			return minimumDailyPay
		}
		return base
	}
}

// CanAssign checks whether an order at the given distance is admissible
// against the agent's remaining budgets. The distance ceiling is checked
// first; the first failing rule wins:
//
//  1. totalDistance + distanceKm > 100 km  -> RejectionDistanceLimit
//  2. totalHours + distanceKm*5/60 > 10 h  -> RejectionHoursLimit
//
// Both ceilings are hard; there is no partial admission.
func (m *DailyMetrics) CanAssign(distanceKm float64) (bool, RejectionReason) {
	if m.totalDistanceKm+distanceKm > MaxDistanceKm {
		return false, RejectionDistanceLimit
	}

	if m.totalWorkingHours+travelHours(distanceKm) > MaxWorkingHours {
		return false, RejectionHoursLimit
	}

	return true, RejectionNone
}

// RecordAssignment increments the accumulator for one assigned order:
// one order, the delivery distance, and the travel time at 5 minutes per km.
// Counters only grow within a cycle.
func (m *DailyMetrics) RecordAssignment(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidError("distance must not be negative")
	}

	m.totalOrders++
	m.totalDistanceKm += distanceKm
	m.totalWorkingHours += travelHours(distanceKm)
	return nil
}

// RevertAssignment compensates a RecordAssignment whose persistence failed
// and was rolled back, restoring the in-memory accumulator to match storage.
func (m *DailyMetrics) RevertAssignment(distanceKm float64) {
	if m.totalOrders == 0 {
		return
	}

	m.totalOrders--
	m.totalDistanceKm -= distanceKm
	m.totalWorkingHours -= travelHours(distanceKm)

	if m.totalDistanceKm < 0 {
		m.totalDistanceKm = 0
	}
	if m.totalWorkingHours < 0 {
		m.totalWorkingHours = 0
	}
}

// EstimatedDeliveryMinutes converts a delivery distance to whole minutes of
// travel time, rounded down.
func EstimatedDeliveryMinutes(distanceKm float64) int {
	return int(distanceKm * MinutesPerKm)
}

func travelHours(distanceKm float64) float64 {
	return distanceKm * MinutesPerKm / 60
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
