package repository

import (
	"context"

	"rental-core/internal/domain/deal"
	"rental-core/internal/infra"
	"rental-core/internal/infra/db"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type DealRepository struct {
	db db.DBTX
}

func NewDealRepository(dbtx db.DBTX) *DealRepository {
	return &DealRepository{db: dbtx}
}

const dealColumns = `id, property_id, landlord_id, tenant_id, status`

func (r *DealRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.DealSnapshot, error) {
	return r.find(ctx, id, `SELECT `+dealColumns+` FROM deals WHERE id = $1`)
}

func (r *DealRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.DealSnapshot, error) {
	return r.find(ctx, id, `SELECT `+dealColumns+` FROM deals WHERE id = $1 FOR UPDATE`)
}

func (r *DealRepository) find(ctx context.Context, id uuid.UUID, query string) (*shared.DealSnapshot, error) {
	var (
		snap   shared.DealSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.PropertyID,
		&snap.LandlordID,
		&snap.TenantID,
		&status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deal", err)
	}
	snap.Status = deal.Status(status)
	return &snap, nil
}

func (r *DealRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to deal.Status) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE deals SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`,
		id, string(from), string(to),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update deal status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *DealRepository) IDsByProperty(ctx context.Context, propertyID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM deals WHERE property_id = $1`, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals by property", err)
	}
	defer rows.Close()
	return scanIDs(rows, "deal")
}

func (r *DealRepository) IDsByClient(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM deals WHERE tenant_id = $1 OR landlord_id = $1`, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals by client", err)
	}
	defer rows.Close()
	return scanIDs(rows, "deal")
}

func (r *DealRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM deals WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete deals", err)
	}
	return tag.RowsAffected(), nil
}

func (r *DealRepository) CancelByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE deals SET status = 'cancelled', updated_at = now()
		WHERE id = ANY($1) AND status NOT IN ('completed', 'cancelled')`,
		ids,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel deals", err)
	}
	return tag.RowsAffected(), nil
}
