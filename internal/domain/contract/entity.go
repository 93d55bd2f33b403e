package contract

import (
	"errors"
	"time"

	"rental-core/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidRent    = errors.New("monthly rent must be positive")
	ErrAlreadySigned  = errors.New("contract is already signed")
	ErrTermsLocked    = errors.New("terms are only amendable on a landlord-held draft")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

type Contract struct {
	id               uuid.UUID
	dealID           *uuid.UUID
	propertyID       uuid.UUID
	landlordID       uuid.UUID
	tenantID         uuid.UUID
	period           booking.DateRange
	monthlyRentCents int64
	depositCents     int64
	status           Status
	signedAt         *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// NewDraft builds the draft contract auto-created when a booking is
// confirmed, or created directly by a landlord.
func NewDraft(
	dealID *uuid.UUID,
	propertyID, landlordID, tenantID uuid.UUID,
	period booking.DateRange,
	monthlyRentCents, depositCents int64,
) (*Contract, error) {
	if monthlyRentCents <= 0 {
		return nil, ErrInvalidRent
	}
	if depositCents < 0 {
		return nil, ErrNegativeAmount
	}

	return &Contract{
		id:               uuid.New(),
		dealID:           dealID,
		propertyID:       propertyID,
		landlordID:       landlordID,
		tenantID:         tenantID,
		period:           period,
		monthlyRentCents: monthlyRentCents,
		depositCents:     depositCents,
		status:           StatusDraft,
	}, nil
}

func ReconstructContract(
	id uuid.UUID,
	dealID *uuid.UUID,
	propertyID, landlordID, tenantID uuid.UUID,
	period booking.DateRange,
	monthlyRentCents, depositCents int64,
	status Status,
	signedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Contract {
	return &Contract{
		id:               id,
		dealID:           dealID,
		propertyID:       propertyID,
		landlordID:       landlordID,
		tenantID:         tenantID,
		period:           period,
		monthlyRentCents: monthlyRentCents,
		depositCents:     depositCents,
		status:           status,
		signedAt:         signedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// AmendTerms replaces the financial terms. Allowed only on a draft, and only
// for the landlord.
func (c *Contract) AmendTerms(isLandlord bool, monthlyRentCents, depositCents int64) error {
	if !TermsAmendable(c.status, isLandlord) {
		return ErrTermsLocked
	}
	if monthlyRentCents <= 0 {
		return ErrInvalidRent
	}
	if depositCents < 0 {
		return ErrNegativeAmount
	}
	c.monthlyRentCents = monthlyRentCents
	c.depositCents = depositCents
	return nil
}

// ExpiredBy reports whether an active contract's period has ended.
func (c *Contract) ExpiredBy(now time.Time) bool {
	return c.status == StatusActive && !now.Before(c.period.End())
}

func (c *Contract) ID() uuid.UUID             { return c.id }
func (c *Contract) DealID() *uuid.UUID        { return c.dealID }
func (c *Contract) PropertyID() uuid.UUID     { return c.propertyID }
func (c *Contract) LandlordID() uuid.UUID     { return c.landlordID }
func (c *Contract) TenantID() uuid.UUID       { return c.tenantID }
func (c *Contract) Period() booking.DateRange { return c.period }
func (c *Contract) MonthlyRentCents() int64   { return c.monthlyRentCents }
func (c *Contract) DepositCents() int64       { return c.depositCents }
func (c *Contract) Status() Status            { return c.status }
func (c *Contract) SignedAt() *time.Time      { return c.signedAt }
func (c *Contract) CreatedAt() time.Time      { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time      { return c.updatedAt }
