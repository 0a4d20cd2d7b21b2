package order

import (
	"fmt"

	"allocation/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with defined transitions so orders follow
// the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Assigned ──> InTransit ──> Delivered
//	          │        │
//	          │        └──> Cancelled
//	          ├──> Deferred ──> Cancelled
//	          └──> Cancelled
//
// Only Pending orders are eligible for an allocation cycle; a cycle moves
// each of them to exactly Assigned or Deferred.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly created order, eligible for
	// the next allocation cycle.
	Pending

	// Assigned indicates the order has been matched to an agent for
	// delivery on its delivery date.
	Assigned

	// InTransit indicates the assigned agent has picked the order up.
	InTransit

	// Delivered indicates the order reached the customer. Final state.
	Delivered

	// Deferred indicates no agent could take the order this cycle due to
	// constraint exhaustion. Deferred orders are not retried automatically.
	Deferred

	// Cancelled indicates the order was withdrawn. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
		Deferred:  "deferred",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
		Deferred:  "deferred",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the persisted representation of a status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted, lowercase name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateAssign checks if the status allows assignment without performing
// the transition. Only Pending orders can be assigned.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Defer transitions the status to Deferred.
//
// Valid transitions:
//   - Pending -> Deferred
func (s Status) Defer() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to defer", s.String()),
		)
	}

	return Deferred, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - Assigned -> InTransit
func (s Status) StartTransit() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start transit", s.String()),
		)
	}

	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Assigned -> Cancelled
//   - Deferred -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Assigned && s != Deferred {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// ValidateCanHaveAgent validates the consistency between order status and
// agent assignment: orders past assignment must carry an agent, orders before
// it must not.
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	requiresAgent := s == Assigned || s == InTransit || s == Delivered

	if hasAgent && !requiresAgent {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an agent", s.String()),
		)
	}

	if !hasAgent && requiresAgent {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no agent", s.String()),
		)
	}

	return nil
}
