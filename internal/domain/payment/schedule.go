package payment

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTerms  = errors.New("terms are missing a positive monthly rent")
	ErrInvalidMonths = errors.New("months must be at least 1")
)

// The utilities obligation is a fixed share of the rent.
const utilitiesRate = 0.10

// Terms are the commercial terms a schedule is derived from, loaded from the
// originating deal or contract.
type Terms struct {
	DealID           *uuid.UUID
	ContractID       *uuid.UUID
	PropertyID       uuid.UUID
	MonthlyRentCents int64
	DepositCents     int64
}

// Draft is a payment obligation not yet persisted. All drafts start pending.
type Draft struct {
	DealID      *uuid.UUID
	ContractID  *uuid.UUID
	PropertyID  uuid.UUID
	Type        Type
	AmountCents int64
	Status      Status
	DueDate     time.Time
}

// GenerateSchedule derives the payment drafts for a rental period: one
// deposit dated startDate when the deposit is positive, then per month one
// rent draft and one utilities draft at round(rent*0.10), the latter omitted
// when it rounds to zero. Deterministic and pure: the only clock input is
// startDate.
func GenerateSchedule(terms Terms, months int, startDate time.Time) ([]Draft, error) {
	if months < 1 {
		return nil, ErrInvalidMonths
	}
	if terms.MonthlyRentCents <= 0 {
		return nil, ErrInvalidTerms
	}

	drafts := make([]Draft, 0, months*2+1)

	if terms.DepositCents > 0 {
		drafts = append(drafts, draft(terms, TypeDeposit, terms.DepositCents, startDate))
	}

	utilities := int64(math.Round(float64(terms.MonthlyRentCents) * utilitiesRate))
	for i := 0; i < months; i++ {
		due := startDate.AddDate(0, i, 0)
		drafts = append(drafts, draft(terms, TypeRent, terms.MonthlyRentCents, due))
		if utilities > 0 {
			drafts = append(drafts, draft(terms, TypeUtilities, utilities, due))
		}
	}

	return drafts, nil
}

func draft(terms Terms, typ Type, amount int64, due time.Time) Draft {
	return Draft{
		DealID:      terms.DealID,
		ContractID:  terms.ContractID,
		PropertyID:  terms.PropertyID,
		Type:        typ,
		AmountCents: amount,
		Status:      StatusPending,
		DueDate:     due,
	}
}
