// Package warehouse provides the Warehouse aggregate for the allocation
// system. A warehouse is the distance origin for all orders it owns; it is
// created by external admin workflows and read-only to the allocation core.
package warehouse

import (
	"errors"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/errs"
	"allocation/internal/pkg/guard"
)

const defaultCapacity = 1000

// Domain errors for warehouse operations.
var (
	// ErrNameIsRequired is returned when attempting to create a warehouse without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrWarehouseIsNotConstructed is returned when using an improperly initialized Warehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")
)

// Warehouse represents a dispatch point holding pending orders and hosting
// field agents. Its location is the origin for every distance computed during
// an allocation cycle.
type Warehouse struct {
	id       kernel.UUID
	name     string
	location kernel.GeoPoint
	capacity int
	guard    guard.ConstructorGuard
}

// NewWarehouse creates a Warehouse with the given identity, name and
// location. Capacity defaults to 1000 orders; use RestoreWarehouse to rebuild
// a warehouse with a persisted capacity.
func NewWarehouse(id kernel.UUID, name string, location kernel.GeoPoint) (*Warehouse, error) {
	warehouse := &Warehouse{
		capacity: defaultCapacity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		warehouse.setID(id),
		warehouse.setName(name),
		warehouse.setLocation(location),
	); err != nil {
		return nil, err
	}

	return warehouse, nil
}

// RestoreWarehouse reconstructs a Warehouse aggregate from persistent storage.
func RestoreWarehouse(id kernel.UUID, name string, location kernel.GeoPoint, capacity int) (*Warehouse, error) {
	warehouse, err := NewWarehouse(id, name, location)
	if err != nil {
		return nil, err
	}

	if err = warehouse.setCapacity(capacity); err != nil {
		return nil, err
	}

	return warehouse, nil
}

// Validate ensures the Warehouse was created via its constructor.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// IsEqual compares two warehouses by identity.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Name returns the warehouse's display name.
func (w *Warehouse) Name() string {
	return w.name
}

// Location returns the warehouse's geographic coordinate.
func (w *Warehouse) Location() kernel.GeoPoint {
	return w.location
}

// Capacity returns the maximum number of orders the warehouse can hold.
func (w *Warehouse) Capacity() int {
	return w.capacity
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	w.name = name
	return nil
}

func (w *Warehouse) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	w.location = location
	return nil
}

func (w *Warehouse) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsRequiredError("capacity")
	}
	w.capacity = capacity
	return nil
}
