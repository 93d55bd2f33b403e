package repository

import (
	"context"
	"time"

	"rental-core/internal/domain/contract"
	"rental-core/internal/infra"
	"rental-core/internal/infra/db"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ContractRepository struct {
	db db.DBTX
}

func NewContractRepository(dbtx db.DBTX) *ContractRepository {
	return &ContractRepository{db: dbtx}
}

const contractColumns = `id, deal_id, property_id, landlord_id, tenant_id,
	starts_at, ends_at, monthly_rent_cents, deposit_cents, status, signed_at`

func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO contracts (deal_id, property_id, landlord_id, tenant_id,
			starts_at, ends_at, monthly_rent_cents, deposit_cents, status, signed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		pgconv.UUIDPtrToPgtype(c.DealID()),
		c.PropertyID(),
		c.LandlordID(),
		c.TenantID(),
		c.Period().Start(),
		c.Period().End(),
		c.MonthlyRentCents(),
		c.DepositCents(),
		string(c.Status()),
		pgconv.TimePtrToPgtype(c.SignedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create contract", err)
	}
	return id, nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ContractSnapshot, error) {
	return r.find(ctx, id, `SELECT `+contractColumns+` FROM contracts WHERE id = $1`)
}

func (r *ContractRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.ContractSnapshot, error) {
	return r.find(ctx, id, `SELECT `+contractColumns+` FROM contracts WHERE id = $1 FOR UPDATE`)
}

func (r *ContractRepository) find(ctx context.Context, id uuid.UUID, query string) (*shared.ContractSnapshot, error) {
	var (
		snap     shared.ContractSnapshot
		dealID   pgtype.UUID
		status   string
		signedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&dealID,
		&snap.PropertyID,
		&snap.LandlordID,
		&snap.TenantID,
		&snap.StartsAt,
		&snap.EndsAt,
		&snap.MonthlyRentCents,
		&snap.DepositCents,
		&status,
		&signedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contract", err)
	}
	snap.DealID = pgconv.UUIDPtrFromPgtype(dealID)
	snap.Status = contract.Status(status)
	snap.SignedAt = pgconv.TimePtrFromPgtype(signedAt)
	return &snap, nil
}

// UpdateStatus guards on the expected current status and stamps signed_at at
// most once: a second activation attempt keeps the original timestamp.
func (r *ContractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to contract.Status, signedAt *time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE contracts
		SET status = $3, signed_at = COALESCE(signed_at, $4), updated_at = now()
		WHERE id = $1 AND status = $2`,
		id, string(from), string(to), pgconv.TimePtrToPgtype(signedAt),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update contract status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ContractRepository) IDsByDealIDs(ctx context.Context, dealIDs []uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM contracts WHERE deal_id = ANY($1)`, dealIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contracts by deals", err)
	}
	defer rows.Close()
	return scanIDs(rows, "contract")
}

func (r *ContractRepository) IDsByProperty(ctx context.Context, propertyID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM contracts WHERE property_id = $1`, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contracts by property", err)
	}
	defer rows.Close()
	return scanIDs(rows, "contract")
}

func (r *ContractRepository) IDsByParty(ctx context.Context, partyID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM contracts WHERE landlord_id = $1 OR tenant_id = $1`, partyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contracts by party", err)
	}
	defer rows.Close()
	return scanIDs(rows, "contract")
}

func (r *ContractRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM contracts WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete contracts", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ContractRepository) TerminateByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE contracts SET status = 'terminated', updated_at = now()
		WHERE id = ANY($1) AND status IN ('draft', 'active')`,
		ids,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to terminate contracts", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ContractRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE contracts SET status = 'expired', updated_at = now()
		WHERE status = 'active' AND ends_at <= $1`,
		now,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire contracts", err)
	}
	return tag.RowsAffected(), nil
}
