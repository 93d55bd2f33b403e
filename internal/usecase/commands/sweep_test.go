//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-core/internal/infra"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/shared"
	sharedmock "rental-core/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweepExpiredContracts(t *testing.T) {
	now := time.Date(2024, 7, 1, 3, 0, 0, 0, time.UTC)

	newSweep := func(t *testing.T) (*sharedmock.MockContractRepository, commands.MaintenanceCommands) {
		ctrl := gomock.NewController(t)
		mockUoW := sharedmock.NewMockUnitOfWork(ctrl)
		mockTx := sharedmock.NewMockTx(ctrl)
		mockContracts := sharedmock.NewMockContractRepository(ctrl)

		mockTx.EXPECT().Contracts().Return(mockContracts).AnyTimes()
		mockUoW.EXPECT().
			Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, mockTx)
			})

		return mockContracts, commands.NewMaintenanceCommands(mockUoW, clock.NewMockClock(now))
	}

	t.Run("expires due contracts against the current time", func(t *testing.T) {
		mockContracts, sweep := newSweep(t)
		mockContracts.EXPECT().ExpireDue(gomock.Any(), now).Return(int64(3), nil)

		swept, err := sweep.SweepExpiredContracts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), swept)
	})

	t.Run("nothing due", func(t *testing.T) {
		mockContracts, sweep := newSweep(t)
		mockContracts.EXPECT().ExpireDue(gomock.Any(), now).Return(int64(0), nil)

		swept, err := sweep.SweepExpiredContracts(context.Background())

		require.NoError(t, err)
		assert.Zero(t, swept)
	})

	t.Run("repository failure is marked", func(t *testing.T) {
		mockContracts, sweep := newSweep(t)
		mockContracts.EXPECT().ExpireDue(gomock.Any(), now).
			Return(int64(0), infra.WrapRepoErr("expire contracts", errors.New("connection reset")))

		_, err := sweep.SweepExpiredContracts(context.Background())

		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}
