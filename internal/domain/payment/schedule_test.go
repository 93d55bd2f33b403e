//go:build unit

package payment_test

import (
	"testing"
	"time"

	"rental-core/internal/domain/payment"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchedule(t *testing.T) {
	dealID := uuid.New()
	propertyID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	terms := payment.Terms{
		DealID:           &dealID,
		PropertyID:       propertyID,
		MonthlyRentCents: 45000,
		DepositCents:     45000,
	}

	t.Run("two months with deposit", func(t *testing.T) {
		drafts, err := payment.GenerateSchedule(terms, 2, start)
		require.NoError(t, err)

		feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		want := []payment.Draft{
			{DealID: &dealID, PropertyID: propertyID, Type: payment.TypeDeposit, AmountCents: 45000, Status: payment.StatusPending, DueDate: start},
			{DealID: &dealID, PropertyID: propertyID, Type: payment.TypeRent, AmountCents: 45000, Status: payment.StatusPending, DueDate: start},
			{DealID: &dealID, PropertyID: propertyID, Type: payment.TypeUtilities, AmountCents: 4500, Status: payment.StatusPending, DueDate: start},
			{DealID: &dealID, PropertyID: propertyID, Type: payment.TypeRent, AmountCents: 45000, Status: payment.StatusPending, DueDate: feb},
			{DealID: &dealID, PropertyID: propertyID, Type: payment.TypeUtilities, AmountCents: 4500, Status: payment.StatusPending, DueDate: feb},
		}
		if diff := cmp.Diff(want, drafts); diff != "" {
			t.Errorf("schedule mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no deposit draft when deposit is zero", func(t *testing.T) {
		noDeposit := terms
		noDeposit.DepositCents = 0

		drafts, err := payment.GenerateSchedule(noDeposit, 1, start)
		require.NoError(t, err)
		require.Len(t, drafts, 2)
		assert.Equal(t, payment.TypeRent, drafts[0].Type)
		assert.Equal(t, payment.TypeUtilities, drafts[1].Type)
	})

	t.Run("utilities omitted when they round to zero", func(t *testing.T) {
		tiny := terms
		tiny.MonthlyRentCents = 4
		tiny.DepositCents = 0

		drafts, err := payment.GenerateSchedule(tiny, 1, start)
		require.NoError(t, err)
		require.Len(t, drafts, 1)
		assert.Equal(t, payment.TypeRent, drafts[0].Type)
	})

	t.Run("month arithmetic follows calendar months", func(t *testing.T) {
		jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		noDeposit := terms
		noDeposit.DepositCents = 0

		drafts, err := payment.GenerateSchedule(noDeposit, 2, jan31)
		require.NoError(t, err)
		// AddDate normalizes Jan 31 + 1 month to Mar 2 in a leap year.
		assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), drafts[2].DueDate)
	})

	t.Run("months below one rejected", func(t *testing.T) {
		_, err := payment.GenerateSchedule(terms, 0, start)
		assert.ErrorIs(t, err, payment.ErrInvalidMonths)
	})

	t.Run("non-positive rent rejected", func(t *testing.T) {
		broken := terms
		broken.MonthlyRentCents = 0
		_, err := payment.GenerateSchedule(broken, 6, start)
		assert.ErrorIs(t, err, payment.ErrInvalidTerms)
	})
}
