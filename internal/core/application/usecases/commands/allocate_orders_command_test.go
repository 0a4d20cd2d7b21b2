package commands_test

import (
	"testing"
	"time"

	"allocation/internal/core/application/usecases/commands"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAllocateOrdersCommand_Success(t *testing.T) {
	warehouseID := kernel.NewUUID()
	date := time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC)

	cmd, err := commands.NewAllocateOrdersCommand(warehouseID, date)

	require.NoError(t, err)
	assert.Equal(t, warehouseID, cmd.WarehouseID())
	assert.Equal(t, date, cmd.Date())
	assert.NoError(t, cmd.Validate())
}

func TestNewAllocateOrdersCommand_EmptyWarehouseID(t *testing.T) {
	_, err := commands.NewAllocateOrdersCommand(kernel.UUID{}, time.Now())

	require.Error(t, err)
}

func TestNewAllocateOrdersCommand_ZeroDate(t *testing.T) {
	_, err := commands.NewAllocateOrdersCommand(kernel.NewUUID(), time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAllocateOrdersCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.AllocateOrdersCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAllocateOrdersCommandIsNotConstructed)
}
