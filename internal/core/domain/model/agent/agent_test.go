package agent_test

import (
	"testing"
	"time"

	"allocation/internal/core/domain/model/agent"
	"allocation/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgent(t *testing.T) {
	t.Run("should create active agent without check-in", func(t *testing.T) {
		id := kernel.NewUUID()
		warehouseID := kernel.NewUUID()

		a, err := agent.NewAgent(id, "Ravi Kumar", "EMP-001", warehouseID)

		require.NoError(t, err)
		assert.Equal(t, id, a.ID())
		assert.Equal(t, "Ravi Kumar", a.Name())
		assert.Equal(t, "EMP-001", a.EmployeeID())
		assert.Equal(t, warehouseID, a.WarehouseID())
		assert.True(t, a.IsActive())
		assert.Nil(t, a.CheckedInAt())
		assert.False(t, a.IsAvailable())
	})

	t.Run("should collect all field errors", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.UUID{}, "", "", kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, agent.ErrNameIsRequired)
		assert.ErrorIs(t, err, agent.ErrEmployeeIDIsRequired)
	})
}

func TestRestoreAgent(t *testing.T) {
	t.Run("should restore inactive agent with check-in marker", func(t *testing.T) {
		checkedInAt := time.Date(2025, 6, 10, 6, 30, 0, 0, time.UTC)

		a, err := agent.RestoreAgent(kernel.NewUUID(), "Ravi Kumar", "EMP-001", kernel.NewUUID(), false, &checkedInAt)

		require.NoError(t, err)
		assert.False(t, a.IsActive())
		require.NotNil(t, a.CheckedInAt())
		assert.True(t, a.CheckedInAt().Equal(checkedInAt))
	})
}

func TestAgent_Availability(t *testing.T) {
	newAgent := func(t *testing.T) *agent.Agent {
		t.Helper()
		a, err := agent.NewAgent(kernel.NewUUID(), "Ravi Kumar", "EMP-001", kernel.NewUUID())
		require.NoError(t, err)
		return a
	}

	t.Run("checked-in active agent is available", func(t *testing.T) {
		a := newAgent(t)

		a.CheckIn(time.Date(2025, 6, 10, 6, 30, 0, 0, time.UTC))

		assert.True(t, a.IsAvailable())
	})

	t.Run("check-out removes availability", func(t *testing.T) {
		a := newAgent(t)
		a.CheckIn(time.Now())

		a.CheckOut()

		assert.False(t, a.IsAvailable())
		assert.Nil(t, a.CheckedInAt())
	})

	t.Run("inactive agent is unavailable even when checked in", func(t *testing.T) {
		checkedInAt := time.Now()
		a, err := agent.RestoreAgent(kernel.NewUUID(), "Ravi Kumar", "EMP-001", kernel.NewUUID(), false, &checkedInAt)
		require.NoError(t, err)

		assert.False(t, a.IsAvailable())
	})
}

func TestAgent_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	warehouseID := kernel.NewUUID()

	first, err := agent.NewAgent(id, "Ravi Kumar", "EMP-001", warehouseID)
	require.NoError(t, err)
	same, err := agent.NewAgent(id, "Other Name", "EMP-002", warehouseID)
	require.NoError(t, err)
	other, err := agent.NewAgent(kernel.NewUUID(), "Ravi Kumar", "EMP-001", warehouseID)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(same))
	assert.False(t, first.IsEqual(other))
	assert.False(t, first.IsEqual(nil))
}

func TestAgent_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var a agent.Agent

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, agent.ErrAgentIsNotConstructed, err)
	})
}
