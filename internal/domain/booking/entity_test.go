//go:build unit

package booking_test

import (
	"testing"

	"rental-core/internal/domain/booking"
	"rental-core/internal/domain/party"
	"rental-core/internal/domain/transition"
	"rental-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, "looking forward to the stay", actual.Message())
	})

	t.Run("owner cannot book their own property", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.TenantID = b.OwnerID }).
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrSelfBooking)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.TotalCents = -1 }).
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})

	t.Run("message is trimmed", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.Message = "  hello \n" }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "hello", actual.Message())
	})
}

func TestBookingTransitions(t *testing.T) {
	testCases := []struct {
		name  string
		from  booking.Status
		to    booking.Status
		role  party.Role
		errIs error
	}{
		{name: "landlord confirms pending", from: booking.StatusPending, to: booking.StatusConfirmed, role: party.RoleLandlord},
		{name: "tenant cannot confirm", from: booking.StatusPending, to: booking.StatusConfirmed, role: party.RoleTenant, errIs: transition.ErrRoleNotAllowed},
		{name: "tenant cancels pending", from: booking.StatusPending, to: booking.StatusCancelled, role: party.RoleTenant},
		{name: "landlord cancels confirmed", from: booking.StatusConfirmed, to: booking.StatusCancelled, role: party.RoleLandlord},
		{name: "landlord completes confirmed", from: booking.StatusConfirmed, to: booking.StatusCompleted, role: party.RoleLandlord},
		{name: "tenant cannot complete", from: booking.StatusConfirmed, to: booking.StatusCompleted, role: party.RoleTenant, errIs: transition.ErrRoleNotAllowed},
		{name: "pending cannot complete directly", from: booking.StatusPending, to: booking.StatusCompleted, role: party.RoleLandlord, errIs: transition.ErrIllegalTransition},
		{name: "cancelled is terminal", from: booking.StatusCancelled, to: booking.StatusPending, role: party.RoleLandlord, errIs: transition.ErrIllegalTransition},
		{name: "completed is terminal", from: booking.StatusCompleted, to: booking.StatusConfirmed, role: party.RoleLandlord, errIs: transition.ErrIllegalTransition},
		{name: "terminal to itself rejected", from: booking.StatusCompleted, to: booking.StatusCompleted, role: party.RoleLandlord, errIs: transition.ErrIllegalTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.Transitions.Decide(tc.from, tc.to, tc.role)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("confirming declares the draft contract effect", func(t *testing.T) {
		decision, err := booking.Transitions.Decide(booking.StatusPending, booking.StatusConfirmed, party.RoleLandlord)
		require.NoError(t, err)
		assert.True(t, decision.Declares(transition.EffectCreateDraftContract))
	})

	t.Run("cancelling declares no effects", func(t *testing.T) {
		decision, err := booking.Transitions.Decide(booking.StatusPending, booking.StatusCancelled, party.RoleTenant)
		require.NoError(t, err)
		assert.Empty(t, decision.Effects)
	})
}

func TestProRataPriceCalculator(t *testing.T) {
	calc := booking.NewProRataPriceCalculator()

	t.Run("ten nights at a third of the monthly rent", func(t *testing.T) {
		period := booking.ReconstructDateRange(day(1), day(11))
		// 45000/30 = 1500 per night, 10 nights.
		assert.Equal(t, int64(15000), calc.TotalCents(45000, period))
	})

	t.Run("nightly rate rounds to nearest cent", func(t *testing.T) {
		period := booking.ReconstructDateRange(day(1), day(2))
		// 100/30 = 3.33 rounds to 3.
		assert.Equal(t, int64(3), calc.TotalCents(100, period))
	})
}
