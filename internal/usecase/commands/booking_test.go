//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-core/internal/domain/booking"
	"rental-core/internal/domain/property"
	"rental-core/internal/infra"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/shared"
	"rental-core/tests/common/builder"
	commandsmock "rental-core/tests/mock/commands"
	sharedmock "rental-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUoW      *sharedmock.MockUnitOfWork
	mockTx       *sharedmock.MockTx
	mockProps    *sharedmock.MockPropertyRepository
	mockBookings *sharedmock.MockBookingRepository
	mockNotifier *commandsmock.MockNotifier
	commands     commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockProps = sharedmock.NewMockPropertyRepository(s.mockCtrl)
	s.mockBookings = sharedmock.NewMockBookingRepository(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)

	s.mockTx.EXPECT().Properties().Return(s.mockProps).AnyTimes()
	s.mockTx.EXPECT().Bookings().Return(s.mockBookings).AnyTimes()

	s.commands = commands.NewBookingCommands(s.mockUoW, booking.NewProRataPriceCalculator(), s.mockNotifier)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) expectSerializableTx() {
	s.mockUoW.EXPECT().
		WithinSerializable(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		})
}

func validInput(prop *shared.PropertySnapshot) commands.CreateBookingInput {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return commands.CreateBookingInput{
		PropertyID: prop.ID,
		TenantID:   uuid.New(),
		StartsAt:   start,
		EndsAt:     start.AddDate(0, 0, 10),
		Message:    "arriving in march",
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("success: pending booking persisted and owner notified", func() {
		prop := builder.NewPropertyBuilder().BuildSnapshot()
		in := validInput(prop)
		s.expectSerializableTx()

		s.mockProps.EXPECT().FindByIDForUpdate(gomock.Any(), prop.ID).Return(prop, nil)
		s.mockBookings.EXPECT().BlockingWindows(gomock.Any(), prop.ID).Return(nil, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.mockNotifier.EXPECT().Notify(gomock.Any(), prop.OwnerID, commands.EventBookingCreated, gomock.Any())

		snap, err := s.commands.CreateBooking(context.Background(), in)

		s.Require().NoError(err)
		s.Equal(prop.ID, snap.PropertyID)
		s.Equal(in.TenantID, snap.TenantID)
		s.Equal(booking.StatusPending, snap.Status)
		// 45000 per 30-day month over 10 nights.
		s.Equal(int64(15000), snap.TotalCents)
		s.True(snap.StartsAt.Equal(in.StartsAt))
		s.True(snap.EndsAt.Equal(in.EndsAt))
	})

	s.Run("error: inverted range rejected before any transaction", func() {
		prop := builder.NewPropertyBuilder().BuildSnapshot()
		in := validInput(prop)
		in.EndsAt = in.StartsAt.AddDate(0, 0, -1)

		snap, err := s.commands.CreateBooking(context.Background(), in)

		s.Nil(snap)
		s.ErrorIs(err, commands.ErrInvalidRange)
	})

	s.Run("error: unknown property maps to ErrNotFound", func() {
		prop := builder.NewPropertyBuilder().BuildSnapshot()
		in := validInput(prop)
		s.expectSerializableTx()

		s.mockProps.EXPECT().FindByIDForUpdate(gomock.Any(), prop.ID).
			Return(nil, infra.WrapRepoErr("property not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.commands.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrNotFound)
	})

	s.Run("error: property not bookable", func() {
		prop := builder.NewPropertyBuilder().
			With(func(p *builder.PropertyBuilder) { p.Status = property.StatusMaintenance }).
			BuildSnapshot()
		in := validInput(prop)
		s.expectSerializableTx()

		s.mockProps.EXPECT().FindByIDForUpdate(gomock.Any(), prop.ID).Return(prop, nil)

		_, err := s.commands.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrPropertyUnavailable)
	})

	s.Run("error: owner booking own property", func() {
		prop := builder.NewPropertyBuilder().BuildSnapshot()
		in := validInput(prop)
		in.TenantID = prop.OwnerID
		s.expectSerializableTx()

		s.mockProps.EXPECT().FindByIDForUpdate(gomock.Any(), prop.ID).Return(prop, nil)

		_, err := s.commands.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrSelfBooking)
	})

	s.Run("error: overlapping blocking window", func() {
		prop := builder.NewPropertyBuilder().BuildSnapshot()
		in := validInput(prop)
		window := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.StartsAt = in.StartsAt.AddDate(0, 0, 5)
				b.EndsAt = in.EndsAt.AddDate(0, 0, 5)
				b.Status = booking.StatusConfirmed
			}).
			BuildWindow()
		s.expectSerializableTx()

		s.mockProps.EXPECT().FindByIDForUpdate(gomock.Any(), prop.ID).Return(prop, nil)
		s.mockBookings.EXPECT().BlockingWindows(gomock.Any(), prop.ID).
			Return([]booking.Window{window}, nil)

		_, err := s.commands.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrDateConflict)
	})

	s.Run("success: cancelled booking in the same window does not block", func() {
		prop := builder.NewPropertyBuilder().BuildSnapshot()
		in := validInput(prop)
		window := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.StartsAt = in.StartsAt
				b.EndsAt = in.EndsAt
				b.Status = booking.StatusCancelled
			}).
			BuildWindow()
		s.expectSerializableTx()

		s.mockProps.EXPECT().FindByIDForUpdate(gomock.Any(), prop.ID).Return(prop, nil)
		s.mockBookings.EXPECT().BlockingWindows(gomock.Any(), prop.ID).
			Return([]booking.Window{window}, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.mockNotifier.EXPECT().Notify(gomock.Any(), prop.OwnerID, commands.EventBookingCreated, gomock.Any())

		_, err := s.commands.CreateBooking(context.Background(), in)

		s.NoError(err)
	})

	s.Run("error: exclusion constraint race surfaces as ErrDateConflict", func() {
		prop := builder.NewPropertyBuilder().BuildSnapshot()
		in := validInput(prop)
		s.expectSerializableTx()

		s.mockProps.EXPECT().FindByIDForUpdate(gomock.Any(), prop.ID).Return(prop, nil)
		s.mockBookings.EXPECT().BlockingWindows(gomock.Any(), prop.ID).Return(nil, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert booking", errors.New("exclusion violation"), infra.KindConflict))

		_, err := s.commands.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrDateConflict)
	})

	s.Run("error: infrastructure failure marked as ErrDatabaseOperationFailed", func() {
		prop := builder.NewPropertyBuilder().BuildSnapshot()
		in := validInput(prop)
		s.expectSerializableTx()

		s.mockProps.EXPECT().FindByIDForUpdate(gomock.Any(), prop.ID).Return(prop, nil)
		s.mockBookings.EXPECT().BlockingWindows(gomock.Any(), prop.ID).
			Return(nil, infra.WrapRepoErr("list windows", errors.New("connection reset")))

		_, err := s.commands.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}
