package order_test

import (
	"testing"

	"allocation/internal/core/domain/model/order"
	"allocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all persisted names", func(t *testing.T) {
		testCases := []struct {
			value    string
			expected order.Status
		}{
			{"pending", order.Pending},
			{"assigned", order.Assigned},
			{"in_transit", order.InTransit},
			{"delivered", order.Delivered},
			{"deferred", order.Deferred},
			{"cancelled", order.Cancelled},
		}

		for _, tc := range testCases {
			t.Run(tc.value, func(t *testing.T) {
				status, err := order.StatusFromString(tc.value)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, value := range []string{"", "unknown", "PENDING", "shipped"} {
			_, err := order.StatusFromString(value)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "in_transit", order.InTransit.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range []order.Status{
		order.Pending, order.Assigned, order.InTransit,
		order.Delivered, order.Deferred, order.Cancelled,
	} {
		require.NoError(t, status.Validate())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("assign", func(t *testing.T) {
		next, err := order.Pending.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)

		for _, from := range []order.Status{order.Assigned, order.InTransit, order.Delivered, order.Deferred, order.Cancelled} {
			_, err := from.Assign()
			require.Error(t, err, from.String())
		}
	})

	t.Run("defer", func(t *testing.T) {
		next, err := order.Pending.Defer()
		require.NoError(t, err)
		assert.Equal(t, order.Deferred, next)

		for _, from := range []order.Status{order.Assigned, order.InTransit, order.Delivered, order.Deferred, order.Cancelled} {
			_, err := from.Defer()
			require.Error(t, err, from.String())
		}
	})

	t.Run("start transit", func(t *testing.T) {
		next, err := order.Assigned.StartTransit()
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, next)

		for _, from := range []order.Status{order.Pending, order.InTransit, order.Delivered, order.Deferred, order.Cancelled} {
			_, err := from.StartTransit()
			require.Error(t, err, from.String())
		}
	})

	t.Run("deliver", func(t *testing.T) {
		next, err := order.InTransit.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)

		for _, from := range []order.Status{order.Pending, order.Assigned, order.Delivered, order.Deferred, order.Cancelled} {
			_, err := from.Deliver()
			require.Error(t, err, from.String())
		}
	})

	t.Run("cancel", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.Assigned, order.Deferred} {
			next, err := from.Cancel()
			require.NoError(t, err, from.String())
			assert.Equal(t, order.Cancelled, next)
		}

		for _, from := range []order.Status{order.InTransit, order.Delivered, order.Cancelled} {
			_, err := from.Cancel()
			require.Error(t, err, from.String())
		}
	})
}

func TestStatus_ValidateCanHaveAgent(t *testing.T) {
	t.Run("agent-carrying states require an agent", func(t *testing.T) {
		for _, status := range []order.Status{order.Assigned, order.InTransit, order.Delivered} {
			require.NoError(t, status.ValidateCanHaveAgent(true), status.String())
			require.Error(t, status.ValidateCanHaveAgent(false), status.String())
		}
	})

	t.Run("other states must not carry an agent", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Deferred, order.Cancelled} {
			require.NoError(t, status.ValidateCanHaveAgent(false), status.String())
			require.Error(t, status.ValidateCanHaveAgent(true), status.String())
		}
	})
}
