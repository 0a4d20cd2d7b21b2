package agent

import (
	"errors"
	"time"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/errs"
	"allocation/internal/pkg/guard"
)

// Domain errors for agent operations.
var (
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmployeeIDIsRequired is returned when attempting to create an agent without an employee ID.
	ErrEmployeeIDIsRequired = errs.NewValueIsRequiredError("employee ID")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
)

// Agent represents a field delivery agent affiliated with a warehouse.
// Agents are created by external workflows; the allocation core only reads
// active agents that have checked in for the day's cycle.
//
// Business rules:
//   - An agent must have a valid UUID, a non-empty name and employee ID,
//     and a valid warehouse affiliation
//   - Only active agents with a check-in marker participate in allocation
type Agent struct {
	id          kernel.UUID
	name        string
	employeeID  string
	warehouseID kernel.UUID
	active      bool
	checkedInAt *time.Time
	guard       guard.ConstructorGuard
}

// NewAgent creates an active Agent without a check-in marker.
func NewAgent(id kernel.UUID, name, employeeID string, warehouseID kernel.UUID) (*Agent, error) {
	agent := &Agent{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		agent.setID(id),
		agent.setName(name),
		agent.setEmployeeID(employeeID),
		agent.setWarehouseID(warehouseID),
	); err != nil {
		return nil, err
	}

	return agent, nil
}

// RestoreAgent reconstructs an Agent aggregate from persistent storage,
// including its active flag and optional check-in marker.
func RestoreAgent(
	id kernel.UUID,
	name, employeeID string,
	warehouseID kernel.UUID,
	active bool,
	checkedInAt *time.Time,
) (*Agent, error) {
	agent, err := NewAgent(id, name, employeeID, warehouseID)
	if err != nil {
		return nil, err
	}

	agent.active = active
	agent.checkedInAt = checkedInAt
	return agent, nil
}

// Validate ensures the Agent was created via its constructor.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by identity.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return a.name
}

// EmployeeID returns the agent's unique employee identifier.
// Available agents are scanned in employee-ID order during allocation, so
// this value also fixes the agent's position in the selection scan.
func (a *Agent) EmployeeID() string {
	return a.employeeID
}

// WarehouseID returns the identifier of the agent's warehouse.
func (a *Agent) WarehouseID() kernel.UUID {
	return a.warehouseID
}

// IsActive reports whether the agent is employed and eligible for work.
func (a *Agent) IsActive() bool {
	return a.active
}

// CheckedInAt returns the agent's check-in time, or nil if the agent has not
// checked in.
func (a *Agent) CheckedInAt() *time.Time {
	return a.checkedInAt
}

// CheckIn marks the agent as present and available for today's cycle.
func (a *Agent) CheckIn(at time.Time) {
	a.checkedInAt = &at
}

// CheckOut clears the agent's check-in marker.
func (a *Agent) CheckOut() {
	a.checkedInAt = nil
}

// IsAvailable reports whether the agent can receive assignments: the agent
// must be active and checked in.
func (a *Agent) IsAvailable() bool {
	return a.active && a.checkedInAt != nil
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Agent) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}
	a.employeeID = employeeID
	return nil
}

func (a *Agent) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	a.warehouseID = warehouseID
	return nil
}
