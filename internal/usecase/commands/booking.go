package commands

import (
	"context"
	"time"

	"rental-core/internal/domain/booking"
	"rental-core/internal/infra"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	PropertyID uuid.UUID
	TenantID   uuid.UUID
	StartsAt   time.Time
	EndsAt     time.Time
	Message    string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*shared.BookingSnapshot, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	pricing  booking.PriceCalculator
	notifier Notifier
}

func NewBookingCommands(uow shared.UnitOfWork, pricing booking.PriceCalculator, notifier Notifier) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		pricing:  pricing,
		notifier: notifier,
	}
}

// CreateBooking inserts a pending reservation request. Conflict detection and
// the insert run in one serializable transaction with the property row
// locked, so two concurrent requests for overlapping ranges cannot both
// commit; the exclusion constraint on the bookings table is the second line
// of defense and surfaces as ErrDateConflict as well.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*shared.BookingSnapshot, error) {
	period, err := booking.NewDateRange(in.StartsAt, in.EndsAt)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}

	var (
		created *booking.Booking
		ownerID uuid.UUID
	)
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		prop, err := tx.Properties().FindByIDForUpdate(ctx, in.PropertyID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		ownerID = prop.OwnerID

		if !prop.Status.Bookable() {
			return ErrPropertyUnavailable
		}

		total := c.pricing.TotalCents(prop.MonthlyRentCents, period)
		b, err := booking.NewBooking(prop.ID, prop.OwnerID, in.TenantID, period, total, in.Message)
		if err != nil {
			return errs.Mark(err, ErrSelfBooking)
		}

		windows, err := tx.Bookings().BlockingWindows(ctx, prop.ID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if booking.HasConflict(period, windows) {
			return ErrDateConflict
		}

		if _, err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrDateConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.notifier.Notify(ctx, ownerID, EventBookingCreated, map[string]any{
		"booking_id":  created.ID(),
		"property_id": created.PropertyID(),
		"tenant_id":   created.TenantID(),
		"period":      created.Period().ToTstzrange(),
	})

	return &shared.BookingSnapshot{
		ID:         created.ID(),
		PropertyID: created.PropertyID(),
		TenantID:   created.TenantID(),
		StartsAt:   created.Period().Start(),
		EndsAt:     created.Period().End(),
		TotalCents: created.TotalCents(),
		Status:     created.Status(),
	}, nil
}
