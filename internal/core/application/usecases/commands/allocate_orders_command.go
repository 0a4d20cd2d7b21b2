package commands

import (
	"errors"
	"time"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/errs"
	"allocation/internal/pkg/guard"
)

var ErrAllocateOrdersCommandIsNotConstructed = errors.New(
	"AllocateOrdersCommand must be created via NewAllocateOrdersCommand constructor",
)

// AllocateOrdersCommand triggers one allocation cycle for a single warehouse.
// The cycle scores the warehouse's pending orders, matches each one against
// the checked-in agents under the daily distance and working-hour ceilings,
// and resolves every pending order to assigned or deferred.
//
// Example:
//
//	cmd, err := NewAllocateOrdersCommand(warehouseID, time.Now())
//	if err != nil {
//	    return err
//	}
//	summary, err := handler.Handle(ctx, cmd)
type AllocateOrdersCommand struct {
	warehouseID kernel.UUID
	date        time.Time

	guard guard.ConstructorGuard
}

// NewAllocateOrdersCommand creates a command to run an allocation cycle for
// the given warehouse on the given date. The date determines which daily
// metrics records the cycle reads and increments.
func NewAllocateOrdersCommand(warehouseID kernel.UUID, date time.Time) (AllocateOrdersCommand, error) {
	if err := warehouseID.Validate(); err != nil {
		return AllocateOrdersCommand{}, err
	}

	if date.IsZero() {
		return AllocateOrdersCommand{}, errs.NewValueIsRequiredError("date")
	}

	return AllocateOrdersCommand{
		warehouseID: warehouseID,
		date:        date,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// WarehouseID returns the warehouse the cycle runs for.
func (c AllocateOrdersCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Date returns the allocation date of the cycle.
func (c AllocateOrdersCommand) Date() time.Time {
	return c.date
}

// Validate ensures the command was created through the constructor.
// Returns ErrAllocateOrdersCommandIsNotConstructed if validation fails.
func (c AllocateOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrAllocateOrdersCommandIsNotConstructed,
	)
}
