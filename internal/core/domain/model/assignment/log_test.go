package assignment_test

import (
	"testing"
	"time"

	"allocation/internal/core/domain/model/assignment"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLog(t *testing.T) {
	t.Run("should create log with derived estimate", func(t *testing.T) {
		id := kernel.NewUUID()
		agentID := kernel.NewUUID()
		orderID := kernel.NewUUID()
		date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		log, err := assignment.NewLog(id, agentID, orderID, date, 3.4)

		require.NoError(t, err)
		assert.Equal(t, id, log.ID())
		assert.Equal(t, agentID, log.AgentID())
		assert.Equal(t, orderID, log.OrderID())
		assert.True(t, log.AssignmentDate().Equal(date))
		assert.InDelta(t, 3.4, log.DistanceKm(), 1e-9)
		// 3.4 km * 5 min/km = 17 min
		assert.Equal(t, 17, log.EstimatedMinutes())
		require.NoError(t, log.Validate())
	})

	t.Run("should reject empty identifiers", func(t *testing.T) {
		date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		_, err := assignment.NewLog(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, date, 3.4)

		require.Error(t, err)
	})

	t.Run("should reject zero assignment date", func(t *testing.T) {
		_, err := assignment.NewLog(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Time{}, 3.4)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative distance", func(t *testing.T) {
		date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		_, err := assignment.NewLog(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), date, -0.1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreLog(t *testing.T) {
	t.Run("should keep persisted estimate", func(t *testing.T) {
		date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		log, err := assignment.RestoreLog(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), date, 3.4, 20)

		require.NoError(t, err)
		assert.Equal(t, 20, log.EstimatedMinutes())
	})
}

func TestLog_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var log assignment.Log

		err := log.Validate()

		require.Error(t, err)
		assert.Equal(t, assignment.ErrLogIsNotConstructed, err)
	})

	t.Run("nil fails validation", func(t *testing.T) {
		var log *assignment.Log

		err := log.Validate()

		require.Error(t, err)
		assert.Equal(t, assignment.ErrLogIsNotConstructed, err)
	})
}
