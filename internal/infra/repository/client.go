package repository

import (
	"context"

	"rental-core/internal/domain/client"
	"rental-core/internal/infra"
	"rental-core/internal/infra/db"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientRepository struct {
	db db.DBTX
}

func NewClientRepository(dbtx db.DBTX) *ClientRepository {
	return &ClientRepository{db: dbtx}
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ClientSnapshot, error) {
	var (
		snap shared.ClientSnapshot
		kind string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, owner_id, kind, is_active FROM clients WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.OwnerID, &kind, &snap.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client", err)
	}
	snap.Kind = client.Kind(kind)
	return &snap, nil
}

func (r *ClientRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE clients SET is_active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update client activity", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete client", err)
	}
	return tag.RowsAffected(), nil
}
