package repository

import (
	"context"

	"rental-core/internal/domain/property"
	"rental-core/internal/infra"
	"rental-core/internal/infra/db"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type PropertyRepository struct {
	db db.DBTX
}

func NewPropertyRepository(dbtx db.DBTX) *PropertyRepository {
	return &PropertyRepository{db: dbtx}
}

const propertyColumns = `id, owner_id, title, monthly_rent_cents, deposit_cents, status`

func (r *PropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	return r.find(ctx, id, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`)
}

func (r *PropertyRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	return r.find(ctx, id, `SELECT `+propertyColumns+` FROM properties WHERE id = $1 FOR UPDATE`)
}

func (r *PropertyRepository) find(ctx context.Context, id uuid.UUID, query string) (*shared.PropertySnapshot, error) {
	var (
		snap   shared.PropertySnapshot
		status string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.OwnerID,
		&snap.Title,
		&snap.MonthlyRentCents,
		&snap.DepositCents,
		&status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property", err)
	}
	snap.Status = property.Status(status)
	return &snap, nil
}

func (r *PropertyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status property.Status) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE properties SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update property status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete property", err)
	}
	return tag.RowsAffected(), nil
}
