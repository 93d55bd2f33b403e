//go:build unit || integration

package builder

import (
	"time"

	"rental-core/internal/domain/booking"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	OwnerID    uuid.UUID
	TenantID   uuid.UUID
	StartsAt   time.Time
	EndsAt     time.Time
	TotalCents int64
	Status     booking.Status
	Message    string
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		OwnerID:    uuid.New(),
		TenantID:   uuid.New(),
		StartsAt:   start,
		EndsAt:     start.AddDate(0, 1, 0),
		TotalCents: 45000,
		Status:     booking.StatusPending,
		Message:    "looking forward to the stay",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.NewDateRange(b.StartsAt, b.EndsAt)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.PropertyID, b.OwnerID, b.TenantID, period, b.TotalCents, b.Message)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		TenantID:   b.TenantID,
		StartsAt:   b.StartsAt,
		EndsAt:     b.EndsAt,
		TotalCents: b.TotalCents,
		Status:     b.Status,
	}
}

func (b *BookingBuilder) BuildWindow() booking.Window {
	return booking.Window{
		Range:  booking.ReconstructDateRange(b.StartsAt, b.EndsAt),
		Status: b.Status,
	}
}
