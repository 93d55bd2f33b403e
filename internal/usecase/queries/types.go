package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const MaxListLimit = 200

// Read models (DTO for read side)
type PropertyView struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Title            string    `json:"title"`
	MonthlyRentCents int64     `json:"monthly_rent_cents"`
	DepositCents     int64     `json:"deposit_cents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type BookingView struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"property_id"`
	PropertyTitle string    `json:"property_title"`
	TenantID      uuid.UUID `json:"tenant_id"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	TotalCents    int64     `json:"total_cents"`
	Status        string    `json:"status"`
	Message       *string   `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DealView struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"property_id"`
	PropertyTitle string    `json:"property_title"`
	LandlordID    uuid.UUID `json:"landlord_id"`
	TenantID      uuid.UUID `json:"tenant_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ContractView struct {
	ID               uuid.UUID  `json:"id"`
	DealID           *uuid.UUID `json:"deal_id,omitempty"`
	PropertyID       uuid.UUID  `json:"property_id"`
	PropertyTitle    string     `json:"property_title"`
	LandlordID       uuid.UUID  `json:"landlord_id"`
	TenantID         uuid.UUID  `json:"tenant_id"`
	StartsAt         time.Time  `json:"starts_at"`
	EndsAt           time.Time  `json:"ends_at"`
	MonthlyRentCents int64      `json:"monthly_rent_cents"`
	DepositCents     int64      `json:"deposit_cents"`
	Status           string     `json:"status"`
	SignedAt         *time.Time `json:"signed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type PaymentView struct {
	ID          uuid.UUID  `json:"id"`
	DealID      *uuid.UUID `json:"deal_id,omitempty"`
	ContractID  *uuid.UUID `json:"contract_id,omitempty"`
	PropertyID  uuid.UUID  `json:"property_id"`
	Type        string     `json:"type"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// ReadStore is the aggregate read-side port. Each method returns denormalized
// views built from joined rows; none of them participate in the write-side
// unit of work.
type ReadStore interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	PropertiesByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*PropertyView, error)

	BookingByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	BookingsByProperty(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*BookingView, error)
	BookingsByTenant(ctx context.Context, tenantID uuid.UUID, limit int32) ([]*BookingView, error)

	DealByID(ctx context.Context, id uuid.UUID) (*DealView, error)
	DealsByProperty(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*DealView, error)

	ContractByID(ctx context.Context, id uuid.UUID) (*ContractView, error)
	ContractsByParty(ctx context.Context, partyID uuid.UUID, limit int32) ([]*ContractView, error)

	PaymentsByDeal(ctx context.Context, dealID uuid.UUID) ([]*PaymentView, error)
	PaymentsByContract(ctx context.Context, contractID uuid.UUID) ([]*PaymentView, error)
	PaymentsDueBefore(ctx context.Context, due time.Time, limit int32) ([]*PaymentView, error)
}
