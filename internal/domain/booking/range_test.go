//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rental-core/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	t.Run("start before end", func(t *testing.T) {
		r, err := booking.NewDateRange(day(1), day(10))
		require.NoError(t, err)
		assert.Equal(t, day(1), r.Start())
		assert.Equal(t, day(10), r.End())
	})

	t.Run("start equal to end", func(t *testing.T) {
		_, err := booking.NewDateRange(day(5), day(5))
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := booking.NewDateRange(day(10), day(1))
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})
}

func TestDateRange_Overlaps(t *testing.T) {
	base := booking.ReconstructDateRange(day(10), day(20))

	testCases := []struct {
		name     string
		other    booking.DateRange
		overlaps bool
	}{
		{
			name:     "fully inside",
			other:    booking.ReconstructDateRange(day(12), day(18)),
			overlaps: true,
		},
		{
			name:     "identical",
			other:    booking.ReconstructDateRange(day(10), day(20)),
			overlaps: true,
		},
		{
			name:     "extends past both ends",
			other:    booking.ReconstructDateRange(day(5), day(25)),
			overlaps: true,
		},
		{
			name:     "overlaps the start",
			other:    booking.ReconstructDateRange(day(5), day(11)),
			overlaps: true,
		},
		{
			name:     "overlaps the end",
			other:    booking.ReconstructDateRange(day(19), day(25)),
			overlaps: true,
		},
		{
			name:     "abuts the start",
			other:    booking.ReconstructDateRange(day(1), day(10)),
			overlaps: false,
		},
		{
			name:     "abuts the end",
			other:    booking.ReconstructDateRange(day(20), day(28)),
			overlaps: false,
		},
		{
			name:     "entirely before",
			other:    booking.ReconstructDateRange(day(1), day(5)),
			overlaps: false,
		},
		{
			name:     "entirely after",
			other:    booking.ReconstructDateRange(day(25), day(28)),
			overlaps: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			// Overlap is symmetric.
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base))
		})
	}
}

func TestDateRange_Nights(t *testing.T) {
	r := booking.ReconstructDateRange(day(1), day(11))
	assert.Equal(t, 10, r.Nights())
}

func TestHasConflict(t *testing.T) {
	candidate := booking.ReconstructDateRange(day(10), day(20))

	window := func(start, end int, status booking.Status) booking.Window {
		return booking.Window{
			Range:  booking.ReconstructDateRange(day(start), day(end)),
			Status: status,
		}
	}

	t.Run("no existing bookings", func(t *testing.T) {
		assert.False(t, booking.HasConflict(candidate, nil))
	})

	t.Run("overlapping pending booking blocks", func(t *testing.T) {
		existing := []booking.Window{window(15, 25, booking.StatusPending)}
		assert.True(t, booking.HasConflict(candidate, existing))
	})

	t.Run("overlapping confirmed booking blocks", func(t *testing.T) {
		existing := []booking.Window{window(5, 15, booking.StatusConfirmed)}
		assert.True(t, booking.HasConflict(candidate, existing))
	})

	t.Run("cancelled and completed bookings never block", func(t *testing.T) {
		existing := []booking.Window{
			window(10, 20, booking.StatusCancelled),
			window(10, 20, booking.StatusCompleted),
		}
		assert.False(t, booking.HasConflict(candidate, existing))
	})

	t.Run("abutting blocking booking is legal", func(t *testing.T) {
		existing := []booking.Window{
			window(1, 10, booking.StatusConfirmed),
			window(20, 28, booking.StatusPending),
		}
		assert.False(t, booking.HasConflict(candidate, existing))
	})
}
