package readstore

import (
	"context"
	"time"

	"rental-core/internal/infra"
	"rental-core/internal/infra/db"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Store serves the read side straight from the pool: list queries join the
// denormalized columns the views need and never touch the write-side
// repositories.
type Store struct {
	db db.DBTX
}

func NewStore(dbtx db.DBTX) *Store {
	return &Store{db: dbtx}
}

const propertyViewColumns = `
	p.id, p.owner_id, p.title, p.monthly_rent_cents, p.deposit_cents,
	p.status, p.created_at, p.updated_at`

func (s *Store) PropertyByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	row := propertyRow{}
	err := s.db.QueryRow(ctx,
		`SELECT`+propertyViewColumns+` FROM properties p WHERE p.id = $1`, id,
	).Scan(
		&row.ID, &row.OwnerID, &row.Title, &row.MonthlyRentCents,
		&row.DepositCents, &row.Status, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property view", err)
	}
	return row.toView()
}

func (s *Store) PropertiesByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*queries.PropertyView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT`+propertyViewColumns+`
		FROM properties p
		WHERE p.owner_id = $1
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2`,
		ownerID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties by owner", err)
	}
	defer rows.Close()

	return collect(rows, func(rows pgx.Rows) (*queries.PropertyView, error) {
		row := propertyRow{}
		if err := rows.Scan(
			&row.ID, &row.OwnerID, &row.Title, &row.MonthlyRentCents,
			&row.DepositCents, &row.Status, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan property view", err)
		}
		return row.toView()
	})
}

const bookingViewColumns = `
	b.id, b.property_id, p.title, b.tenant_id, lower(b.period), upper(b.period),
	b.total_cents, b.status, b.message, b.created_at, b.updated_at`

func scanBookingRow(rows interface{ Scan(...any) error }) (*queries.BookingView, error) {
	row := bookingRow{}
	if err := rows.Scan(
		&row.ID, &row.PropertyID, &row.PropertyTitle, &row.TenantID,
		&row.StartsAt, &row.EndsAt, &row.TotalCents, &row.Status,
		&row.Message, &row.CreatedAt, &row.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return row.toView()
}

func (s *Store) BookingByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := scanBookingRow(s.db.QueryRow(ctx,
		`SELECT`+bookingViewColumns+`
		FROM bookings b JOIN properties p ON p.id = b.property_id
		WHERE b.id = $1`, id,
	))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return view, nil
}

func (s *Store) BookingsByProperty(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return s.listBookings(ctx,
		`SELECT`+bookingViewColumns+`
		FROM bookings b JOIN properties p ON p.id = b.property_id
		WHERE b.property_id = $1
		ORDER BY lower(b.period), b.id
		LIMIT $2`,
		propertyID, limit,
	)
}

func (s *Store) BookingsByTenant(ctx context.Context, tenantID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return s.listBookings(ctx,
		`SELECT`+bookingViewColumns+`
		FROM bookings b JOIN properties p ON p.id = b.property_id
		WHERE b.tenant_id = $1
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2`,
		tenantID, limit,
	)
}

func (s *Store) listBookings(ctx context.Context, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return collect(rows, func(rows pgx.Rows) (*queries.BookingView, error) {
		view, err := scanBookingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		return view, nil
	})
}

const dealViewColumns = `
	d.id, d.property_id, p.title, d.landlord_id, d.tenant_id, d.status,
	d.created_at, d.updated_at`

func scanDealRow(rows interface{ Scan(...any) error }) (*queries.DealView, error) {
	row := dealRow{}
	if err := rows.Scan(
		&row.ID, &row.PropertyID, &row.PropertyTitle, &row.LandlordID,
		&row.TenantID, &row.Status, &row.CreatedAt, &row.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return row.toView()
}

func (s *Store) DealByID(ctx context.Context, id uuid.UUID) (*queries.DealView, error) {
	view, err := scanDealRow(s.db.QueryRow(ctx,
		`SELECT`+dealViewColumns+`
		FROM deals d JOIN properties p ON p.id = d.property_id
		WHERE d.id = $1`, id,
	))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deal view", err)
	}
	return view, nil
}

func (s *Store) DealsByProperty(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*queries.DealView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT`+dealViewColumns+`
		FROM deals d JOIN properties p ON p.id = d.property_id
		WHERE d.property_id = $1
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT $2`,
		propertyID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals by property", err)
	}
	defer rows.Close()

	return collect(rows, func(rows pgx.Rows) (*queries.DealView, error) {
		view, err := scanDealRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan deal view", err)
		}
		return view, nil
	})
}

const contractViewColumns = `
	c.id, c.deal_id, c.property_id, p.title, c.landlord_id, c.tenant_id,
	c.starts_at, c.ends_at, c.monthly_rent_cents, c.deposit_cents, c.status,
	c.signed_at, c.created_at, c.updated_at`

func scanContractRow(rows interface{ Scan(...any) error }) (*queries.ContractView, error) {
	row := contractRow{}
	if err := rows.Scan(
		&row.ID, &row.DealID, &row.PropertyID, &row.PropertyTitle,
		&row.LandlordID, &row.TenantID, &row.StartsAt, &row.EndsAt,
		&row.MonthlyRentCents, &row.DepositCents, &row.Status,
		&row.SignedAt, &row.CreatedAt, &row.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return row.toView()
}

func (s *Store) ContractByID(ctx context.Context, id uuid.UUID) (*queries.ContractView, error) {
	view, err := scanContractRow(s.db.QueryRow(ctx,
		`SELECT`+contractViewColumns+`
		FROM contracts c JOIN properties p ON p.id = c.property_id
		WHERE c.id = $1`, id,
	))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contract view", err)
	}
	return view, nil
}

func (s *Store) ContractsByParty(ctx context.Context, partyID uuid.UUID, limit int32) ([]*queries.ContractView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT`+contractViewColumns+`
		FROM contracts c JOIN properties p ON p.id = c.property_id
		WHERE c.landlord_id = $1 OR c.tenant_id = $1
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2`,
		partyID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contracts by party", err)
	}
	defer rows.Close()

	return collect(rows, func(rows pgx.Rows) (*queries.ContractView, error) {
		view, err := scanContractRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan contract view", err)
		}
		return view, nil
	})
}

const paymentViewColumns = `
	id, deal_id, contract_id, property_id, type, amount_cents, status,
	due_date, paid_at, created_at, updated_at`

func scanPaymentRow(rows interface{ Scan(...any) error }) (*queries.PaymentView, error) {
	row := paymentRow{}
	if err := rows.Scan(
		&row.ID, &row.DealID, &row.ContractID, &row.PropertyID, &row.Type,
		&row.AmountCents, &row.Status, &row.DueDate, &row.PaidAt,
		&row.CreatedAt, &row.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return row.toView()
}

func (s *Store) PaymentsByDeal(ctx context.Context, dealID uuid.UUID) ([]*queries.PaymentView, error) {
	return s.listPayments(ctx,
		`SELECT`+paymentViewColumns+`
		FROM payments WHERE deal_id = $1
		ORDER BY due_date, id`,
		dealID,
	)
}

func (s *Store) PaymentsByContract(ctx context.Context, contractID uuid.UUID) ([]*queries.PaymentView, error) {
	return s.listPayments(ctx,
		`SELECT`+paymentViewColumns+`
		FROM payments WHERE contract_id = $1
		ORDER BY due_date, id`,
		contractID,
	)
}

func (s *Store) PaymentsDueBefore(ctx context.Context, due time.Time, limit int32) ([]*queries.PaymentView, error) {
	return s.listPayments(ctx,
		`SELECT`+paymentViewColumns+`
		FROM payments
		WHERE status = 'pending' AND due_date < $1
		ORDER BY due_date, id
		LIMIT $2`,
		due, limit,
	)
}

func (s *Store) listPayments(ctx context.Context, query string, args ...any) ([]*queries.PaymentView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	return collect(rows, func(rows pgx.Rows) (*queries.PaymentView, error) {
		view, err := scanPaymentRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment view", err)
		}
		return view, nil
	})
}

func collect[T any](rows pgx.Rows, scan func(pgx.Rows) (*T, error)) ([]*T, error) {
	var out []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rows", err)
	}
	return out, nil
}
