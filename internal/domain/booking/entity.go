package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSelfBooking   = errors.New("tenant cannot book their own property")
	ErrNegativePrice = errors.New("total price cannot be negative")
)

type Booking struct {
	id          uuid.UUID
	propertyID  uuid.UUID
	tenantID    uuid.UUID
	period      DateRange
	totalCents  int64
	status      Status
	message     string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking builds a pending reservation request. The period is assumed
// validated by NewDateRange; ownership and conflict checks belong to the
// lifecycle service, not here.
func NewBooking(propertyID, ownerID, tenantID uuid.UUID, period DateRange, totalCents int64, message string) (*Booking, error) {
	if tenantID == ownerID {
		return nil, ErrSelfBooking
	}
	if totalCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:         uuid.New(),
		propertyID: propertyID,
		tenantID:   tenantID,
		period:     period,
		totalCents: totalCents,
		status:     StatusPending,
		message:    strings.TrimSpace(message),
	}, nil
}

func ReconstructBooking(
	id, propertyID, tenantID uuid.UUID,
	period DateRange,
	totalCents int64,
	status Status,
	message string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		propertyID: propertyID,
		tenantID:   tenantID,
		period:     period,
		totalCents: totalCents,
		status:     status,
		message:    message,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) PropertyID() uuid.UUID { return b.propertyID }
func (b *Booking) TenantID() uuid.UUID   { return b.tenantID }
func (b *Booking) Period() DateRange     { return b.period }
func (b *Booking) TotalCents() int64     { return b.totalCents }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Message() string       { return b.message }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }

func (b *Booking) Window() Window {
	return Window{Range: b.period, Status: b.status}
}
