//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rental-core/internal/domain/payment"
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

type PaymentCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUoW       *sharedmock.MockUnitOfWork
	mockTx        *sharedmock.MockTx
	mockProps     *sharedmock.MockPropertyRepository
	mockContracts *sharedmock.MockContractRepository
	mockDeals     *sharedmock.MockDealRepository
	mockPayments  *sharedmock.MockPaymentRepository
	mockNotifier  *commandsmock.MockNotifier
	commands      commands.PaymentCommands
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockProps = sharedmock.NewMockPropertyRepository(s.mockCtrl)
	s.mockContracts = sharedmock.NewMockContractRepository(s.mockCtrl)
	s.mockDeals = sharedmock.NewMockDealRepository(s.mockCtrl)
	s.mockPayments = sharedmock.NewMockPaymentRepository(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)

	s.mockTx.EXPECT().Properties().Return(s.mockProps).AnyTimes()
	s.mockTx.EXPECT().Contracts().Return(s.mockContracts).AnyTimes()
	s.mockTx.EXPECT().Deals().Return(s.mockDeals).AnyTimes()
	s.mockTx.EXPECT().Payments().Return(s.mockPayments).AnyTimes()

	s.mockUoW.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).
		AnyTimes()

	s.commands = commands.NewPaymentCommands(s.mockUoW, s.mockNotifier)
}

func (s *PaymentCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func bulkIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func (s *PaymentCommandsTestSuite) TestGeneratePayments() {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	s.Run("success: deal source pulls terms from the property", func() {
		prop := builder.NewPropertyBuilder().BuildSnapshot()
		dl := builder.NewDealBuilder().
			With(func(d *builder.DealBuilder) { d.PropertyID = prop.ID }).
			BuildSnapshot()
		// Deposit plus rent and utilities for each of two months.
		ids := bulkIDs(5)

		s.mockDeals.EXPECT().FindByID(gomock.Any(), dl.ID).Return(dl, nil)
		s.mockProps.EXPECT().FindByID(gomock.Any(), prop.ID).Return(prop, nil)
		s.mockPayments.EXPECT().
			BulkCreate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, drafts []payment.Draft) ([]uuid.UUID, error) {
				s.Require().Len(drafts, 5)
				s.Equal(payment.TypeDeposit, drafts[0].Type)
				s.Equal(prop.DepositCents, drafts[0].AmountCents)
				s.Equal(payment.TypeRent, drafts[1].Type)
				s.Equal(prop.MonthlyRentCents, drafts[1].AmountCents)
				s.Equal(payment.TypeUtilities, drafts[2].Type)
				for _, d := range drafts {
					s.Require().NotNil(d.DealID)
					s.Equal(dl.ID, *d.DealID)
					s.Nil(d.ContractID)
					s.Equal(prop.ID, d.PropertyID)
					s.Equal(payment.StatusPending, d.Status)
				}
				return ids, nil
			})
		s.mockNotifier.EXPECT().
			Notify(gomock.Any(), dl.LandlordID, commands.EventPaymentsPlanned, gomock.Any())

		out, err := s.commands.GeneratePayments(context.Background(), commands.GeneratePaymentsInput{
			Source:    commands.SourceDeal,
			ID:        dl.ID,
			Months:    2,
			StartDate: start,
		})

		s.Require().NoError(err)
		s.Require().Len(out, 5)
		for i, snap := range out {
			s.Equal(ids[i], snap.ID)
			s.Require().NotNil(snap.DueDate)
		}
		s.True(out[0].DueDate.Equal(start))
		s.True(out[3].DueDate.Equal(start.AddDate(0, 1, 0)))
	})

	s.Run("success: contract source uses its own terms", func() {
		ct := builder.NewContractBuilder().
			With(func(c *builder.ContractBuilder) {
				c.MonthlyRentCents = 60000
				c.DepositCents = 0
			}).
			BuildSnapshot()
		ids := bulkIDs(2)

		s.mockContracts.EXPECT().FindByID(gomock.Any(), ct.ID).Return(ct, nil)
		s.mockPayments.EXPECT().
			BulkCreate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, drafts []payment.Draft) ([]uuid.UUID, error) {
				s.Require().Len(drafts, 2)
				s.Equal(payment.TypeRent, drafts[0].Type)
				s.Equal(int64(60000), drafts[0].AmountCents)
				s.Equal(payment.TypeUtilities, drafts[1].Type)
				s.Equal(int64(6000), drafts[1].AmountCents)
				s.Require().NotNil(drafts[0].ContractID)
				s.Equal(ct.ID, *drafts[0].ContractID)
				return ids, nil
			})
		s.mockNotifier.EXPECT().
			Notify(gomock.Any(), ct.LandlordID, commands.EventPaymentsPlanned, gomock.Any())

		out, err := s.commands.GeneratePayments(context.Background(), commands.GeneratePaymentsInput{
			Source:    commands.SourceContract,
			ID:        ct.ID,
			Months:    1,
			StartDate: start,
		})

		s.Require().NoError(err)
		s.Len(out, 2)
	})

	s.Run("error: zero rent maps to ErrInvalidTerms", func() {
		ct := builder.NewContractBuilder().
			With(func(c *builder.ContractBuilder) { c.MonthlyRentCents = 0 }).
			BuildSnapshot()

		s.mockContracts.EXPECT().FindByID(gomock.Any(), ct.ID).Return(ct, nil)

		_, err := s.commands.GeneratePayments(context.Background(), commands.GeneratePaymentsInput{
			Source:    commands.SourceContract,
			ID:        ct.ID,
			Months:    1,
			StartDate: start,
		})

		s.ErrorIs(err, commands.ErrInvalidTerms)
	})

	s.Run("error: months below one maps to ErrInvalidTerms", func() {
		ct := builder.NewContractBuilder().BuildSnapshot()

		s.mockContracts.EXPECT().FindByID(gomock.Any(), ct.ID).Return(ct, nil)

		_, err := s.commands.GeneratePayments(context.Background(), commands.GeneratePaymentsInput{
			Source:    commands.SourceContract,
			ID:        ct.ID,
			Months:    0,
			StartDate: start,
		})

		s.ErrorIs(err, commands.ErrInvalidTerms)
	})

	s.Run("error: unknown deal maps to ErrNotFound", func() {
		id := uuid.New()
		s.mockDeals.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("deal not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.commands.GeneratePayments(context.Background(), commands.GeneratePaymentsInput{
			Source:    commands.SourceDeal,
			ID:        id,
			Months:    1,
			StartDate: start,
		})

		s.ErrorIs(err, commands.ErrNotFound)
	})

	s.Run("error: unknown source", func() {
		_, err := s.commands.GeneratePayments(context.Background(), commands.GeneratePaymentsInput{
			Source:    commands.ScheduleSource("invoice"),
			ID:        uuid.New(),
			Months:    1,
			StartDate: start,
		})

		s.ErrorIs(err, commands.ErrNotFound)
	})
}
