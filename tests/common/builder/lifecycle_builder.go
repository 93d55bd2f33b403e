//go:build unit || integration

package builder

import (
	"time"

	"rental-core/internal/domain/client"
	"rental-core/internal/domain/contract"
	"rental-core/internal/domain/deal"
	"rental-core/internal/domain/payment"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type ContractBuilder struct {
	ID               uuid.UUID
	DealID           *uuid.UUID
	PropertyID       uuid.UUID
	LandlordID       uuid.UUID
	TenantID         uuid.UUID
	StartsAt         time.Time
	EndsAt           time.Time
	MonthlyRentCents int64
	DepositCents     int64
	Status           contract.Status
	SignedAt         *time.Time
}

func NewContractBuilder() *ContractBuilder {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &ContractBuilder{
		ID:               uuid.New(),
		PropertyID:       uuid.New(),
		LandlordID:       uuid.New(),
		TenantID:         uuid.New(),
		StartsAt:         start,
		EndsAt:           start.AddDate(1, 0, 0),
		MonthlyRentCents: 45000,
		DepositCents:     45000,
		Status:           contract.StatusDraft,
	}
}

func (c *ContractBuilder) With(mutate func(*ContractBuilder)) *ContractBuilder {
	mutate(c)
	return c
}

func (c *ContractBuilder) BuildSnapshot() *shared.ContractSnapshot {
	return &shared.ContractSnapshot{
		ID:               c.ID,
		DealID:           c.DealID,
		PropertyID:       c.PropertyID,
		LandlordID:       c.LandlordID,
		TenantID:         c.TenantID,
		StartsAt:         c.StartsAt,
		EndsAt:           c.EndsAt,
		MonthlyRentCents: c.MonthlyRentCents,
		DepositCents:     c.DepositCents,
		Status:           c.Status,
		SignedAt:         c.SignedAt,
	}
}

type DealBuilder struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	LandlordID uuid.UUID
	TenantID   uuid.UUID
	Status     deal.Status
}

func NewDealBuilder() *DealBuilder {
	return &DealBuilder{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		LandlordID: uuid.New(),
		TenantID:   uuid.New(),
		Status:     deal.StatusDraft,
	}
}

func (d *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(d)
	return d
}

func (d *DealBuilder) BuildSnapshot() *shared.DealSnapshot {
	return &shared.DealSnapshot{
		ID:         d.ID,
		PropertyID: d.PropertyID,
		LandlordID: d.LandlordID,
		TenantID:   d.TenantID,
		Status:     d.Status,
	}
}

type PaymentBuilder struct {
	ID          uuid.UUID
	DealID      *uuid.UUID
	ContractID  *uuid.UUID
	PropertyID  uuid.UUID
	Type        payment.Type
	AmountCents int64
	Status      payment.Status
	DueDate     *time.Time
	PaidAt      *time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	dealID := uuid.New()
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &PaymentBuilder{
		ID:          uuid.New(),
		DealID:      &dealID,
		PropertyID:  uuid.New(),
		Type:        payment.TypeRent,
		AmountCents: 45000,
		Status:      payment.StatusPending,
		DueDate:     &due,
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) BuildSnapshot() *shared.PaymentSnapshot {
	return &shared.PaymentSnapshot{
		ID:          p.ID,
		DealID:      p.DealID,
		ContractID:  p.ContractID,
		PropertyID:  p.PropertyID,
		Type:        p.Type,
		AmountCents: p.AmountCents,
		Status:      p.Status,
		DueDate:     p.DueDate,
		PaidAt:      p.PaidAt,
	}
}

type ClientBuilder struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Kind     client.Kind
	IsActive bool
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Kind:     client.KindTenant,
		IsActive: true,
	}
}

func (c *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(c)
	return c
}

func (c *ClientBuilder) BuildSnapshot() *shared.ClientSnapshot {
	return &shared.ClientSnapshot{
		ID:       c.ID,
		OwnerID:  c.OwnerID,
		Kind:     c.Kind,
		IsActive: c.IsActive,
	}
}
