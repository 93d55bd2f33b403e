package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	ListByDeal(ctx context.Context, dealID uuid.UUID) ([]*PaymentView, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]*PaymentView, error)
	ListDueBefore(ctx context.Context, due time.Time, limit int) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	store ReadStore
}

func NewPaymentQueries(store ReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

func (q *paymentQueriesImpl) ListByDeal(ctx context.Context, dealID uuid.UUID) ([]*PaymentView, error) {
	return q.store.PaymentsByDeal(ctx, dealID)
}

func (q *paymentQueriesImpl) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*PaymentView, error) {
	return q.store.PaymentsByContract(ctx, contractID)
}

func (q *paymentQueriesImpl) ListDueBefore(ctx context.Context, due time.Time, limit int) ([]*PaymentView, error) {
	return q.store.PaymentsDueBefore(ctx, due, int32(ValidateLimit(limit)))
}
