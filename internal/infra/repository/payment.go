package repository

import (
	"context"
	"time"

	"rental-core/internal/domain/payment"
	"rental-core/internal/infra"
	"rental-core/internal/infra/db"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

// BulkCreate inserts the drafts one by one inside the caller's transaction.
// The schedule is small (two rows per month plus a deposit), so a batch
// protocol round-trip is not worth the extra surface.
func (r *PaymentRepository) BulkCreate(ctx context.Context, drafts []payment.Draft) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(drafts))
	for _, d := range drafts {
		var id uuid.UUID
		err := r.db.QueryRow(ctx, `
			INSERT INTO payments (deal_id, contract_id, property_id, type, amount_cents, status, due_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			pgconv.UUIDPtrToPgtype(d.DealID),
			pgconv.UUIDPtrToPgtype(d.ContractID),
			d.PropertyID,
			string(d.Type),
			d.AmountCents,
			string(d.Status),
			pgconv.TimeToPgtype(d.DueDate),
		).Scan(&id)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to create payment", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *PaymentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.PaymentSnapshot, error) {
	var (
		snap       shared.PaymentSnapshot
		dealID     pgtype.UUID
		contractID pgtype.UUID
		typ        string
		status     string
		dueDate    pgtype.Timestamptz
		paidAt     pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, deal_id, contract_id, property_id, type, amount_cents, status, due_date, paid_at
		FROM payments WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(
		&snap.ID,
		&dealID,
		&contractID,
		&snap.PropertyID,
		&typ,
		&snap.AmountCents,
		&status,
		&dueDate,
		&paidAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	snap.DealID = pgconv.UUIDPtrFromPgtype(dealID)
	snap.ContractID = pgconv.UUIDPtrFromPgtype(contractID)
	snap.Type = payment.Type(typ)
	snap.Status = payment.Status(status)
	snap.DueDate = pgconv.TimePtrFromPgtype(dueDate)
	snap.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	return &snap, nil
}

// UpdateStatus guards on the expected current status and stamps paid_at at
// most once: a refund after completion keeps the original payment time.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to payment.Status, paidAt *time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE payments
		SET status = $3, paid_at = COALESCE(paid_at, $4), updated_at = now()
		WHERE id = $1 AND status = $2`,
		id, string(from), string(to), pgconv.TimePtrToPgtype(paidAt),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update payment status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PaymentRepository) DeleteByParents(ctx context.Context, dealIDs, contractIDs []uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM payments WHERE deal_id = ANY($1) OR contract_id = ANY($2)`,
		dealIDs, contractIDs,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete payments", err)
	}
	return tag.RowsAffected(), nil
}

// CancelByParents moves every non-terminal payment under the given deals or
// contracts to cancelled. Completed, refunded and already cancelled rows stay.
func (r *PaymentRepository) CancelByParents(ctx context.Context, dealIDs, contractIDs []uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE payments SET status = 'cancelled', updated_at = now()
		WHERE (deal_id = ANY($1) OR contract_id = ANY($2))
		  AND status IN ('pending', 'processing', 'failed')`,
		dealIDs, contractIDs,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel payments", err)
	}
	return tag.RowsAffected(), nil
}
