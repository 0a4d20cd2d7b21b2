package commands

import (
	"errors"
	"time"

	"allocation/internal/pkg/errs"
	"allocation/internal/pkg/guard"
)

var ErrRunDailyAllocationCommandIsNotConstructed = errors.New(
	"RunDailyAllocationCommand must be created via NewRunDailyAllocationCommand constructor",
)

// RunDailyAllocationCommand triggers allocation cycles for every warehouse
// on the given date. This is the entry point the morning scheduler fires.
//
// Example:
//
//	cmd, err := NewRunDailyAllocationCommand(time.Now())
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, cmd)
type RunDailyAllocationCommand struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewRunDailyAllocationCommand creates a command to run allocation across
// all warehouses for the given date.
func NewRunDailyAllocationCommand(date time.Time) (RunDailyAllocationCommand, error) {
	if date.IsZero() {
		return RunDailyAllocationCommand{}, errs.NewValueIsRequiredError("date")
	}

	return RunDailyAllocationCommand{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Date returns the allocation date of the run.
func (c RunDailyAllocationCommand) Date() time.Time {
	return c.date
}

// Validate ensures the command was created through the constructor.
// Returns ErrRunDailyAllocationCommandIsNotConstructed if validation fails.
func (c RunDailyAllocationCommand) Validate() error {
	return c.guard.Validate(
		ErrRunDailyAllocationCommandIsNotConstructed,
	)
}
