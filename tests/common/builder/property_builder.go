//go:build unit || integration

package builder

import (
	"rental-core/internal/domain/property"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Title            string
	MonthlyRentCents int64
	DepositCents     int64
	Status           property.Status
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:               uuid.New(),
		OwnerID:          uuid.New(),
		Title:            "Test Apartment",
		MonthlyRentCents: 45000,
		DepositCents:     45000,
		Status:           property.StatusAvailable,
	}
}

func (p *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(p)
	return p
}

func (p *PropertyBuilder) BuildSnapshot() *shared.PropertySnapshot {
	return &shared.PropertySnapshot{
		ID:               p.ID,
		OwnerID:          p.OwnerID,
		Title:            p.Title,
		MonthlyRentCents: p.MonthlyRentCents,
		DepositCents:     p.DepositCents,
		Status:           p.Status,
	}
}
