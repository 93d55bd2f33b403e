package commands

import (
	"context"
	"time"

	"rental-core/internal/domain/payment"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleSource string

const (
	SourceDeal     ScheduleSource = "deal"
	SourceContract ScheduleSource = "contract"
)

type GeneratePaymentsInput struct {
	Source    ScheduleSource
	ID        uuid.UUID
	Months    int
	StartDate time.Time
}

type PaymentCommands interface {
	GeneratePayments(ctx context.Context, in GeneratePaymentsInput) ([]*shared.PaymentSnapshot, error)
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
}

func NewPaymentCommands(uow shared.UnitOfWork, notifier Notifier) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		notifier: notifier,
	}
}

// GeneratePayments derives the payment schedule from a deal's or contract's
// commercial terms and bulk-inserts the drafts in one transaction.
func (p *paymentCommandsImpl) GeneratePayments(ctx context.Context, in GeneratePaymentsInput) ([]*shared.PaymentSnapshot, error) {
	var (
		out      []*shared.PaymentSnapshot
		landlord uuid.UUID
	)

	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		terms, landlordID, err := p.loadTerms(ctx, tx, in)
		if err != nil {
			return err
		}
		landlord = landlordID

		drafts, err := payment.GenerateSchedule(terms, in.Months, in.StartDate)
		if err != nil {
			return errs.Mark(err, ErrInvalidTerms)
		}

		ids, err := tx.Payments().BulkCreate(ctx, drafts)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		out = make([]*shared.PaymentSnapshot, len(drafts))
		for i, d := range drafts {
			due := d.DueDate
			out[i] = &shared.PaymentSnapshot{
				ID:          ids[i],
				DealID:      d.DealID,
				ContractID:  d.ContractID,
				PropertyID:  d.PropertyID,
				Type:        d.Type,
				AmountCents: d.AmountCents,
				Status:      d.Status,
				DueDate:     &due,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.notifier.Notify(ctx, landlord, EventPaymentsPlanned, map[string]any{
		"source": string(in.Source),
		"id":     in.ID,
		"count":  len(out),
	})

	return out, nil
}

func (p *paymentCommandsImpl) loadTerms(ctx context.Context, tx shared.Tx, in GeneratePaymentsInput) (payment.Terms, uuid.UUID, error) {
	switch in.Source {
	case SourceDeal:
		dl, err := tx.Deals().FindByID(ctx, in.ID)
		if err != nil {
			return payment.Terms{}, uuid.Nil, mapLoadErr(err)
		}
		prop, err := tx.Properties().FindByID(ctx, dl.PropertyID)
		if err != nil {
			return payment.Terms{}, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		dealID := dl.ID
		return payment.Terms{
			DealID:           &dealID,
			PropertyID:       dl.PropertyID,
			MonthlyRentCents: prop.MonthlyRentCents,
			DepositCents:     prop.DepositCents,
		}, dl.LandlordID, nil

	case SourceContract:
		ct, err := tx.Contracts().FindByID(ctx, in.ID)
		if err != nil {
			return payment.Terms{}, uuid.Nil, mapLoadErr(err)
		}
		contractID := ct.ID
		return payment.Terms{
			DealID:           ct.DealID,
			ContractID:       &contractID,
			PropertyID:       ct.PropertyID,
			MonthlyRentCents: ct.MonthlyRentCents,
			DepositCents:     ct.DepositCents,
		}, ct.LandlordID, nil

	default:
		return payment.Terms{}, uuid.Nil, ErrNotFound
	}
}
