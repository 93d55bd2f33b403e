//go:build unit

package commands_test

import (
	"context"
	"testing"

	"rental-core/internal/domain/cascade"
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

type RemovalCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUoW       *sharedmock.MockUnitOfWork
	mockTx        *sharedmock.MockTx
	mockProps     *sharedmock.MockPropertyRepository
	mockContracts *sharedmock.MockContractRepository
	mockDeals     *sharedmock.MockDealRepository
	mockPayments  *sharedmock.MockPaymentRepository
	mockClients   *sharedmock.MockClientRepository
	mockNotifier  *commandsmock.MockNotifier
	commands      commands.RemovalCommands
}

func (s *RemovalCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockProps = sharedmock.NewMockPropertyRepository(s.mockCtrl)
	s.mockContracts = sharedmock.NewMockContractRepository(s.mockCtrl)
	s.mockDeals = sharedmock.NewMockDealRepository(s.mockCtrl)
	s.mockPayments = sharedmock.NewMockPaymentRepository(s.mockCtrl)
	s.mockClients = sharedmock.NewMockClientRepository(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)

	s.mockTx.EXPECT().Properties().Return(s.mockProps).AnyTimes()
	s.mockTx.EXPECT().Contracts().Return(s.mockContracts).AnyTimes()
	s.mockTx.EXPECT().Deals().Return(s.mockDeals).AnyTimes()
	s.mockTx.EXPECT().Payments().Return(s.mockPayments).AnyTimes()
	s.mockTx.EXPECT().Clients().Return(s.mockClients).AnyTimes()

	s.mockUoW.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).
		AnyTimes()

	s.commands = commands.NewRemovalCommands(s.mockUoW, s.mockNotifier)
}

func (s *RemovalCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRemovalCommandsSuite(t *testing.T) {
	suite.Run(t, new(RemovalCommandsTestSuite))
}

func (s *RemovalCommandsTestSuite) TestRemoveEntity() {
	s.Run("success: deleting a property removes dependents bottom-up", func() {
		prop := builder.NewPropertyBuilder().BuildSnapshot()
		dealIDs := []uuid.UUID{uuid.New(), uuid.New()}
		contractIDs := []uuid.UUID{uuid.New()}

		s.mockProps.EXPECT().FindByIDForUpdate(gomock.Any(), prop.ID).Return(prop, nil)
		s.mockDeals.EXPECT().IDsByProperty(gomock.Any(), prop.ID).Return(dealIDs, nil)
		s.mockContracts.EXPECT().IDsByProperty(gomock.Any(), prop.ID).Return(contractIDs, nil)
		s.mockContracts.EXPECT().IDsByDealIDs(gomock.Any(), dealIDs).Return(contractIDs, nil)

		gomock.InOrder(
			s.mockPayments.EXPECT().DeleteByParents(gomock.Any(), dealIDs, contractIDs).Return(int64(7), nil),
			s.mockContracts.EXPECT().DeleteByIDs(gomock.Any(), contractIDs).Return(int64(1), nil),
			s.mockDeals.EXPECT().DeleteByIDs(gomock.Any(), dealIDs).Return(int64(2), nil),
			s.mockProps.EXPECT().Delete(gomock.Any(), prop.ID).Return(int64(1), nil),
		)
		s.mockNotifier.EXPECT().
			Notify(gomock.Any(), prop.OwnerID, commands.EventEntityRemoved, gomock.Any())

		summary, err := s.commands.RemoveEntity(
			context.Background(), cascade.KindProperty, prop.ID, cascade.ActionDelete, prop.OwnerID)

		s.Require().NoError(err)
		s.Equal(cascade.ActionDelete, summary.Action)
		s.Equal(int64(7), summary.Counts[cascade.KindPayment])
		s.Equal(int64(1), summary.Counts[cascade.KindContract])
		s.Equal(int64(2), summary.Counts[cascade.KindDeal])
		s.Equal(int64(1), summary.Counts[cascade.KindProperty])
	})

	s.Run("success: archiving a property soft-retires every level", func() {
		prop := builder.NewPropertyBuilder().BuildSnapshot()
		dealIDs := []uuid.UUID{uuid.New()}
		contractIDs := []uuid.UUID{uuid.New()}

		s.mockProps.EXPECT().FindByIDForUpdate(gomock.Any(), prop.ID).Return(prop, nil)
		s.mockDeals.EXPECT().IDsByProperty(gomock.Any(), prop.ID).Return(dealIDs, nil)
		s.mockContracts.EXPECT().IDsByProperty(gomock.Any(), prop.ID).Return(contractIDs, nil)
		s.mockContracts.EXPECT().IDsByDealIDs(gomock.Any(), dealIDs).Return(contractIDs, nil)

		s.mockPayments.EXPECT().CancelByParents(gomock.Any(), dealIDs, contractIDs).Return(int64(3), nil)
		s.mockContracts.EXPECT().TerminateByIDs(gomock.Any(), contractIDs).Return(int64(1), nil)
		s.mockDeals.EXPECT().CancelByIDs(gomock.Any(), dealIDs).Return(int64(1), nil)
		s.mockProps.EXPECT().UpdateStatus(gomock.Any(), prop.ID, property.StatusMaintenance).Return(int64(1), nil)
		s.mockNotifier.EXPECT().
			Notify(gomock.Any(), prop.OwnerID, commands.EventEntityRemoved, gomock.Any())

		summary, err := s.commands.RemoveEntity(
			context.Background(), cascade.KindProperty, prop.ID, cascade.ActionArchive, prop.OwnerID)

		s.Require().NoError(err)
		s.Equal(int64(3), summary.Counts[cascade.KindPayment])
	})

	s.Run("success: archiving a client deactivates it and cancels its deals", func() {
		cl := builder.NewClientBuilder().BuildSnapshot()
		dealIDs := []uuid.UUID{uuid.New()}

		s.mockClients.EXPECT().FindByID(gomock.Any(), cl.ID).Return(cl, nil)
		s.mockDeals.EXPECT().IDsByClient(gomock.Any(), cl.ID).Return(dealIDs, nil)
		s.mockContracts.EXPECT().IDsByParty(gomock.Any(), cl.ID).Return(nil, nil)
		s.mockContracts.EXPECT().IDsByDealIDs(gomock.Any(), dealIDs).Return(nil, nil)

		s.mockPayments.EXPECT().CancelByParents(gomock.Any(), dealIDs, nil).Return(int64(0), nil)
		s.mockContracts.EXPECT().TerminateByIDs(gomock.Any(), nil).Return(int64(0), nil)
		s.mockDeals.EXPECT().CancelByIDs(gomock.Any(), dealIDs).Return(int64(1), nil)
		s.mockClients.EXPECT().SetActive(gomock.Any(), cl.ID, false).Return(int64(1), nil)
		s.mockNotifier.EXPECT().
			Notify(gomock.Any(), cl.OwnerID, commands.EventEntityRemoved, gomock.Any())

		summary, err := s.commands.RemoveEntity(
			context.Background(), cascade.KindClient, cl.ID, cascade.ActionArchive, cl.OwnerID)

		s.Require().NoError(err)
		s.Equal(int64(1), summary.Counts[cascade.KindClient])
	})

	s.Run("success: archiving a property terminates a contract with no deal behind it", func() {
		// A confirmed booking creates the contract directly, so it is not
		// reachable through the property's deals.
		prop := builder.NewPropertyBuilder().BuildSnapshot()
		orphanID := uuid.New()

		s.mockProps.EXPECT().FindByIDForUpdate(gomock.Any(), prop.ID).Return(prop, nil)
		s.mockDeals.EXPECT().IDsByProperty(gomock.Any(), prop.ID).Return(nil, nil)
		s.mockContracts.EXPECT().IDsByProperty(gomock.Any(), prop.ID).Return([]uuid.UUID{orphanID}, nil)
		s.mockContracts.EXPECT().IDsByDealIDs(gomock.Any(), nil).Return(nil, nil)

		s.mockPayments.EXPECT().CancelByParents(gomock.Any(), nil, []uuid.UUID{orphanID}).Return(int64(2), nil)
		s.mockContracts.EXPECT().TerminateByIDs(gomock.Any(), []uuid.UUID{orphanID}).Return(int64(1), nil)
		s.mockDeals.EXPECT().CancelByIDs(gomock.Any(), nil).Return(int64(0), nil)
		s.mockProps.EXPECT().UpdateStatus(gomock.Any(), prop.ID, property.StatusMaintenance).Return(int64(1), nil)
		s.mockNotifier.EXPECT().
			Notify(gomock.Any(), prop.OwnerID, commands.EventEntityRemoved, gomock.Any())

		summary, err := s.commands.RemoveEntity(
			context.Background(), cascade.KindProperty, prop.ID, cascade.ActionArchive, prop.OwnerID)

		s.Require().NoError(err)
		s.Equal(int64(1), summary.Counts[cascade.KindContract])
		s.Equal(int64(2), summary.Counts[cascade.KindPayment])
	})

	s.Run("success: contract root touches only payments and itself", func() {
		ct := builder.NewContractBuilder().BuildSnapshot()

		s.mockContracts.EXPECT().FindByIDForUpdate(gomock.Any(), ct.ID).Return(ct, nil)
		s.mockPayments.EXPECT().
			DeleteByParents(gomock.Any(), nil, []uuid.UUID{ct.ID}).
			Return(int64(4), nil)
		s.mockContracts.EXPECT().DeleteByIDs(gomock.Any(), []uuid.UUID{ct.ID}).Return(int64(1), nil)
		s.mockNotifier.EXPECT().
			Notify(gomock.Any(), ct.LandlordID, commands.EventEntityRemoved, gomock.Any())

		summary, err := s.commands.RemoveEntity(
			context.Background(), cascade.KindContract, ct.ID, cascade.ActionDelete, ct.LandlordID)

		s.Require().NoError(err)
		s.Len(summary.Counts, 2)
		s.Equal(int64(4), summary.Counts[cascade.KindPayment])
		s.Equal(int64(1), summary.Counts[cascade.KindContract])
	})

	s.Run("error: non-owner is forbidden", func() {
		prop := builder.NewPropertyBuilder().BuildSnapshot()

		s.mockProps.EXPECT().FindByIDForUpdate(gomock.Any(), prop.ID).Return(prop, nil)

		_, err := s.commands.RemoveEntity(
			context.Background(), cascade.KindProperty, prop.ID, cascade.ActionDelete, uuid.New())

		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("error: payment cannot be a removal root", func() {
		_, err := s.commands.RemoveEntity(
			context.Background(), cascade.KindPayment, uuid.New(), cascade.ActionDelete, uuid.New())

		s.ErrorIs(err, commands.ErrNotFound)
	})

	s.Run("error: unknown action", func() {
		_, err := s.commands.RemoveEntity(
			context.Background(), cascade.KindProperty, uuid.New(), cascade.Action("purge"), uuid.New())

		s.ErrorIs(err, commands.ErrInvalidAction)
	})

	s.Run("error: missing root maps to ErrNotFound", func() {
		id := uuid.New()
		s.mockDeals.EXPECT().FindByIDForUpdate(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("deal not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.commands.RemoveEntity(
			context.Background(), cascade.KindDeal, id, cascade.ActionDelete, uuid.New())

		s.ErrorIs(err, commands.ErrNotFound)
	})
}
