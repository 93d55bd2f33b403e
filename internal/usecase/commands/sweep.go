package commands

import (
	"context"

	"rental-core/internal/pkg/clock"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"
)

type MaintenanceCommands interface {
	SweepExpiredContracts(ctx context.Context) (int64, error)
}

type maintenanceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock) MaintenanceCommands {
	return &maintenanceCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// SweepExpiredContracts marks every active contract whose period has already
// ended as expired. Meant to run from a scheduler; a single set-based UPDATE
// keeps the sweep idempotent.
func (m *maintenanceCommandsImpl) SweepExpiredContracts(ctx context.Context) (int64, error) {
	var swept int64
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Contracts().ExpireDue(ctx, m.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		swept = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return swept, nil
}
