package shared

import (
	"time"

	"rental-core/internal/domain/booking"
	"rental-core/internal/domain/client"
	"rental-core/internal/domain/contract"
	"rental-core/internal/domain/deal"
	"rental-core/internal/domain/payment"
	"rental-core/internal/domain/property"

	"github.com/google/uuid"
)

// Write-side snapshots: the minimal view a command needs to decide, separate
// from the read-side query views.

type PropertySnapshot struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Title            string
	MonthlyRentCents int64
	DepositCents     int64
	Status           property.Status
}

type BookingSnapshot struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	TenantID   uuid.UUID
	StartsAt   time.Time
	EndsAt     time.Time
	TotalCents int64
	Status     booking.Status
}

type ContractSnapshot struct {
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

type DealSnapshot struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	LandlordID uuid.UUID
	TenantID   uuid.UUID
	Status     deal.Status
}

type PaymentSnapshot struct {
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

type ClientSnapshot struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Kind     client.Kind
	IsActive bool
}
