package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID, limit int) ([]*BookingView, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store ReadStore
}

func NewBookingQueries(store ReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.BookingByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID, limit int) ([]*BookingView, error) {
	return q.store.BookingsByProperty(ctx, propertyID, int32(ValidateLimit(limit)))
}

func (q *bookingQueriesImpl) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]*BookingView, error) {
	return q.store.BookingsByTenant(ctx, tenantID, int32(ValidateLimit(limit)))
}
