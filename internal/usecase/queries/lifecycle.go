package queries

import (
	"context"

	"github.com/google/uuid"
)

type PropertyQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*PropertyView, error)
}

type propertyQueriesImpl struct {
	store ReadStore
}

func NewPropertyQueries(store ReadStore) PropertyQueries {
	return &propertyQueriesImpl{store: store}
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	return q.store.PropertyByID(ctx, id)
}

func (q *propertyQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*PropertyView, error) {
	return q.store.PropertiesByOwner(ctx, ownerID, int32(ValidateLimit(limit)))
}

type DealQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DealView, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID, limit int) ([]*DealView, error)
}

type dealQueriesImpl struct {
	store ReadStore
}

func NewDealQueries(store ReadStore) DealQueries {
	return &dealQueriesImpl{store: store}
}

func (q *dealQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DealView, error) {
	return q.store.DealByID(ctx, id)
}

func (q *dealQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID, limit int) ([]*DealView, error) {
	return q.store.DealsByProperty(ctx, propertyID, int32(ValidateLimit(limit)))
}

type ContractQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ContractView, error)
	ListByParty(ctx context.Context, partyID uuid.UUID, limit int) ([]*ContractView, error)
}

type contractQueriesImpl struct {
	store ReadStore
}

func NewContractQueries(store ReadStore) ContractQueries {
	return &contractQueriesImpl{store: store}
}

func (q *contractQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ContractView, error) {
	return q.store.ContractByID(ctx, id)
}

func (q *contractQueriesImpl) ListByParty(ctx context.Context, partyID uuid.UUID, limit int) ([]*ContractView, error) {
	return q.store.ContractsByParty(ctx, partyID, int32(ValidateLimit(limit)))
}
