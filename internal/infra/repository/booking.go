package repository

import (
	"context"
	"time"

	"rental-core/internal/domain/booking"
	"rental-core/internal/infra"
	"rental-core/internal/infra/db"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	var message *string
	if m := b.Message(); m != "" {
		message = &m
	}

	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO bookings (property_id, tenant_id, period, total_cents, status, message)
		VALUES ($1, $2, tstzrange($3, $4, '[)'), $5, $6, $7)
		RETURNING id`,
		b.PropertyID(),
		b.TenantID(),
		b.Period().Start(),
		b.Period().End(),
		b.TotalCents(),
		string(b.Status()),
		pgconv.StringPtrToPgtype(message),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap   shared.BookingSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, property_id, tenant_id, lower(period), upper(period), total_cents, status
		FROM bookings WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(
		&snap.ID,
		&snap.PropertyID,
		&snap.TenantID,
		&snap.StartsAt,
		&snap.EndsAt,
		&snap.TotalCents,
		&status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	snap.Status = booking.Status(status)
	return &snap, nil
}

func (r *BookingRepository) BlockingWindows(ctx context.Context, propertyID uuid.UUID) ([]booking.Window, error) {
	rows, err := r.db.Query(ctx, `
		SELECT lower(period), upper(period), status
		FROM bookings
		WHERE property_id = $1 AND status IN ('pending', 'confirmed')`,
		propertyID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking windows", err)
	}
	defer rows.Close()

	var windows []booking.Window
	for rows.Next() {
		var (
			start, end time.Time
			status     string
		)
		if err := rows.Scan(&start, &end, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocking window", err)
		}
		windows = append(windows, booking.Window{
			Range:  booking.ReconstructDateRange(start, end),
			Status: booking.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocking windows", err)
	}
	return windows, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`,
		id, string(from), string(to),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected(), nil
}
