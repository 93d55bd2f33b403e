//go:build unit

package payment_test

import (
	"testing"

	"rental-core/internal/domain/party"
	"rental-core/internal/domain/payment"
	"rental-core/internal/domain/transition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentTransitions(t *testing.T) {
	testCases := []struct {
		name  string
		from  payment.Status
		to    payment.Status
		role  party.Role
		errIs error
	}{
		{name: "tenant starts processing", from: payment.StatusPending, to: payment.StatusProcessing, role: party.RoleTenant},
		{name: "landlord settles pending directly", from: payment.StatusPending, to: payment.StatusCompleted, role: party.RoleLandlord},
		{name: "tenant cannot settle", from: payment.StatusPending, to: payment.StatusCompleted, role: party.RoleTenant, errIs: transition.ErrRoleNotAllowed},
		{name: "landlord settles processing", from: payment.StatusProcessing, to: payment.StatusCompleted, role: party.RoleLandlord},
		{name: "processing can fail", from: payment.StatusProcessing, to: payment.StatusFailed, role: party.RoleTenant},
		{name: "failed retries to pending", from: payment.StatusFailed, to: payment.StatusPending, role: party.RoleTenant},
		{name: "landlord reopens cancelled", from: payment.StatusCancelled, to: payment.StatusPending, role: party.RoleLandlord},
		{name: "tenant cannot reopen cancelled", from: payment.StatusCancelled, to: payment.StatusPending, role: party.RoleTenant, errIs: transition.ErrRoleNotAllowed},
		{name: "landlord refunds completed", from: payment.StatusCompleted, to: payment.StatusRefunded, role: party.RoleLandlord},
		{name: "completed cannot reenter processing", from: payment.StatusCompleted, to: payment.StatusProcessing, role: party.RoleLandlord, errIs: transition.ErrIllegalTransition},
		{name: "refunded is terminal", from: payment.StatusRefunded, to: payment.StatusPending, role: party.RoleLandlord, errIs: transition.ErrIllegalTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := payment.Transitions.Decide(tc.from, tc.to, tc.role)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("settlement declares the paidAt effect", func(t *testing.T) {
		decision, err := payment.Transitions.Decide(payment.StatusProcessing, payment.StatusCompleted, party.RoleLandlord)
		require.NoError(t, err)
		assert.True(t, decision.Declares(transition.EffectSetPaidAt))
	})

	t.Run("refund declares no effects", func(t *testing.T) {
		decision, err := payment.Transitions.Decide(payment.StatusCompleted, payment.StatusRefunded, party.RoleLandlord)
		require.NoError(t, err)
		assert.Empty(t, decision.Effects)
	})

	t.Run("terminal detection", func(t *testing.T) {
		assert.True(t, payment.StatusRefunded.IsTerminal())
		assert.False(t, payment.StatusCompleted.IsTerminal())
		assert.False(t, payment.StatusCancelled.IsTerminal())
	})
}
