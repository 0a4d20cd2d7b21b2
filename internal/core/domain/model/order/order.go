package order

import (
	"errors"
	"time"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/errs"
)

// Priority bounds for customer-declared urgency. Higher is more urgent.
const (
	MinPriority = 1
	MaxPriority = 5
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a delivery order in the system. It is the aggregate root
// that manages the order lifecycle from creation through allocation to
// delivery or deferral.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, order number and warehouse affiliation
//   - Customer location must be a valid coordinate
//   - Priority is within [MinPriority, MaxPriority]; weight is positive
//   - Status transitions follow the Status state machine
//   - Assigned/InTransit/Delivered orders carry an agent; others do not
type Order struct {
	id               kernel.UUID
	number           string
	customerName     string
	customerAddress  string
	customerLocation kernel.GeoPoint
	warehouseID      kernel.UUID
	weightKg         float64
	priority         int
	status           Status
	assignedAgentID  *kernel.UUID
	createdDate      time.Time
	deliveryDate     *time.Time

	isConstructed bool
}

// NewOrder creates a Pending Order with validation. This is the only way to
// create a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - number: external order number (must be non-empty)
//   - customerName, customerAddress: delivery contact details
//   - customerLocation: validated delivery coordinate
//   - warehouseID: owning warehouse (must be a valid UUID)
//   - weightKg: package weight (must be positive)
//   - priority: urgency within [MinPriority, MaxPriority]
//   - createdDate: order creation date (must be non-zero)
func NewOrder(
	id kernel.UUID,
	number string,
	customerName, customerAddress string,
	customerLocation kernel.GeoPoint,
	warehouseID kernel.UUID,
	weightKg float64,
	priority int,
	createdDate time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setCustomer(customerName, customerAddress),
		order.setCustomerLocation(customerLocation),
		order.setWarehouseID(warehouseID),
		order.setWeightKg(weightKg),
		order.setPriority(priority),
		order.setCreatedDate(createdDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage with
// its full lifecycle state. Verifies status/agent consistency.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerName, customerAddress string,
	customerLocation kernel.GeoPoint,
	warehouseID kernel.UUID,
	weightKg float64,
	priority int,
	status Status,
	assignedAgentID *kernel.UUID,
	createdDate time.Time,
	deliveryDate *time.Time,
) (*Order, error) {
	order, err := NewOrder(
		id, number, customerName, customerAddress, customerLocation,
		warehouseID, weightKg, priority, createdDate,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if err = status.ValidateCanHaveAgent(assignedAgentID != nil); err != nil {
		return nil, err
	}

	if assignedAgentID != nil {
		if err = assignedAgentID.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.assignedAgentID = assignedAgentID
	order.deliveryDate = deliveryDate
	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the external order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerName returns the delivery contact name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerAddress returns the delivery street address.
func (o *Order) CustomerAddress() string {
	return o.customerAddress
}

// CustomerLocation returns the delivery coordinate.
func (o *Order) CustomerLocation() kernel.GeoPoint {
	return o.customerLocation
}

// WarehouseID returns the identifier of the owning warehouse.
func (o *Order) WarehouseID() kernel.UUID {
	return o.warehouseID
}

// WeightKg returns the package weight in kilograms.
func (o *Order) WeightKg() float64 {
	return o.weightKg
}

// Priority returns the declared urgency, MinPriority..MaxPriority.
func (o *Order) Priority() int {
	return o.priority
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedAgent returns the assigned agent's ID, or nil when unassigned.
func (o *Order) AssignedAgent() *kernel.UUID {
	return o.assignedAgentID
}

// CreatedDate returns the order's creation date.
func (o *Order) CreatedDate() time.Time {
	return o.createdDate
}

// DeliveryDate returns the scheduled delivery date, or nil when unscheduled.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// ValidateAssign checks whether the order can currently be assigned.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// Assign matches the order to an agent and schedules delivery.
//
// Business rules:
//   - The agent ID must be valid
//   - The order must be Pending
//
// After successful assignment the status is Assigned, the agent reference is
// set and the delivery date is recorded.
func (o *Order) Assign(agentID kernel.UUID, deliveryDate time.Time) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedAgentID = &agentID
	o.deliveryDate = &deliveryDate
	return nil
}

// Defer marks the order as not assignable this cycle. The order keeps no
// agent reference and no delivery date.
func (o *Order) Defer() error {
	newStatus, err := o.status.Defer()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartTransit marks the order as picked up by its agent.
func (o *Order) StartTransit() error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered marks the order as successfully delivered. Final state.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order. Any agent reference and delivery date are
// cleared. Final state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedAgentID = nil
	o.deliveryDate = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(name, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	o.customerAddress = address
	return nil
}

func (o *Order) setCustomerLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.customerLocation = location
	return nil
}

func (o *Order) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	o.warehouseID = warehouseID
	return nil
}

func (o *Order) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weight must be positive")
	}
	o.weightKg = weightKg
	return nil
}

func (o *Order) setPriority(priority int) error {
	if priority < MinPriority || priority > MaxPriority {
		return errs.NewValueIsOutOfRangeError("priority", priority, MinPriority, MaxPriority)
	}
	o.priority = priority
	return nil
}

func (o *Order) setCreatedDate(createdDate time.Time) error {
	if createdDate.IsZero() {
		return errs.NewValueIsRequiredError("created date")
	}
	o.createdDate = createdDate
	return nil
}
