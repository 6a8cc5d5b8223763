package order_test

import (
	"fmt"
	"testing"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept every recognized status", func(t *testing.T) {
		for _, status := range order.Statuses() {
			t.Run(fmt.Sprintf("should validate %s", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		for _, raw := range []string{"", "Pending", "cancelled", "out for delivery"} {
			t.Run(fmt.Sprintf("should reject %q", raw), func(t *testing.T) {
				err := order.Status(raw).Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "is not a valid status")
			})
		}
	})
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("out-for-delivery")
	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, s)

	s, err = order.ParseStatus("shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Unknown, s)
}

func TestStatus_Statuses(t *testing.T) {
	assert.Equal(t,
		[]order.Status{order.Pending, order.Preparing, order.OutForDelivery, order.Delivered},
		order.Statuses())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow any move between non-terminal statuses", func(t *testing.T) {
		nonTerminal := []order.Status{order.Pending, order.Preparing, order.OutForDelivery}
		for _, from := range nonTerminal {
			for _, to := range order.Statuses() {
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					next, err := from.TransitionTo(to)

					require.NoError(t, err)
					assert.Equal(t, to, next)
				})
			}
		}
	})

	t.Run("should allow moving backwards", func(t *testing.T) {
		next, err := order.OutForDelivery.TransitionTo(order.Pending)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, next)
	})

	t.Run("should reject every move out of delivered", func(t *testing.T) {
		for _, to := range order.Statuses() {
			next, err := order.Delivered.TransitionTo(to)

			require.Error(t, err)
			assert.Equal(t, order.Unknown, next)
			assert.Contains(t, err.Error(), "delivered is a terminal status")
		}
	})

	t.Run("should reject unrecognized targets", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Status("lost"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Unknown, next)
	})
}

func TestStatus_ValidateDelete(t *testing.T) {
	require.NoError(t, order.Pending.ValidateDelete())

	for _, status := range []order.Status{order.Preparing, order.OutForDelivery, order.Delivered} {
		err := status.ValidateDelete()

		require.Error(t, err)
		assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to delete", status))
	}
}
