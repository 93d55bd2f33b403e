//go:build integration

package dbtest

import (
	"context"
	"time"

	"rental-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Fixture inserts bypass the command layer on purpose: integration tests
// arrange state directly and exercise one operation against it.

func InsertClient(ctx context.Context, pool *pgxpool.Pool, snap *shared.ClientSnapshot) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO clients (id, owner_id, kind, name, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		snap.ID, snap.OwnerID, string(snap.Kind), "fixture client", snap.IsActive,
	)
	return err
}

func InsertProperty(ctx context.Context, pool *pgxpool.Pool, snap *shared.PropertySnapshot) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO properties (id, owner_id, title, monthly_rent_cents, deposit_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		snap.ID, snap.OwnerID, snap.Title, snap.MonthlyRentCents, snap.DepositCents, string(snap.Status),
	)
	return err
}

func InsertBooking(ctx context.Context, pool *pgxpool.Pool, snap *shared.BookingSnapshot) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO bookings (id, property_id, tenant_id, period, total_cents, status)
		VALUES ($1, $2, $3, tstzrange($4, $5, '[)'), $6, $7)`,
		snap.ID, snap.PropertyID, snap.TenantID, snap.StartsAt, snap.EndsAt, snap.TotalCents, string(snap.Status),
	)
	return err
}

func InsertDeal(ctx context.Context, pool *pgxpool.Pool, snap *shared.DealSnapshot) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO deals (id, property_id, landlord_id, tenant_id, status)
		VALUES ($1, $2, $3, $4, $5)`,
		snap.ID, snap.PropertyID, snap.LandlordID, snap.TenantID, string(snap.Status),
	)
	return err
}

func InsertContract(ctx context.Context, pool *pgxpool.Pool, snap *shared.ContractSnapshot) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO contracts (id, deal_id, property_id, landlord_id, tenant_id,
			starts_at, ends_at, monthly_rent_cents, deposit_cents, status, signed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		snap.ID, snap.DealID, snap.PropertyID, snap.LandlordID, snap.TenantID,
		snap.StartsAt, snap.EndsAt, snap.MonthlyRentCents, snap.DepositCents, string(snap.Status), snap.SignedAt,
	)
	return err
}

func InsertPayment(ctx context.Context, pool *pgxpool.Pool, snap *shared.PaymentSnapshot) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO payments (id, deal_id, contract_id, property_id, type, amount_cents, status, due_date, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		snap.ID, snap.DealID, snap.ContractID, snap.PropertyID, string(snap.Type),
		snap.AmountCents, string(snap.Status), snap.DueDate, snap.PaidAt,
	)
	return err
}

func CountRows(ctx context.Context, pool *pgxpool.Pool, table string) (int64, error) {
	var n int64
	err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n)
	return n, err
}

func RowStatus(ctx context.Context, pool *pgxpool.Pool, table string, id any) (string, error) {
	var status string
	err := pool.QueryRow(ctx, "SELECT status FROM "+table+" WHERE id = $1", id).Scan(&status)
	return status, err
}

func RowTimestamp(ctx context.Context, pool *pgxpool.Pool, table, column string, id any) (*time.Time, error) {
	var ts *time.Time
	err := pool.QueryRow(ctx, "SELECT "+column+" FROM "+table+" WHERE id = $1", id).Scan(&ts)
	return ts, err
}
