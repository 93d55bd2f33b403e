package commands

import (
	"context"
	"errors"
	"time"

	"rental-core/internal/domain/booking"
	"rental-core/internal/domain/contract"
	"rental-core/internal/domain/deal"
	"rental-core/internal/domain/party"
	"rental-core/internal/domain/payment"
	"rental-core/internal/domain/transition"
	"rental-core/internal/infra"
	"rental-core/internal/pkg/clock"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type TransitionEntity string

const (
	EntityBooking  TransitionEntity = "booking"
	EntityContract TransitionEntity = "contract"
	EntityPayment  TransitionEntity = "payment"
	EntityDeal     TransitionEntity = "deal"
)

type TransitionResult struct {
	Entity TransitionEntity
	ID     uuid.UUID
	From   string
	To     string
	// ContractID is set when confirming a booking auto-created a draft
	// contract.
	ContractID *uuid.UUID
}

type TransitionCommands interface {
	TransitionStatus(ctx context.Context, entity TransitionEntity, id uuid.UUID, requested string, actorID uuid.UUID) (*TransitionResult, error)
}

type transitionCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier Notifier
}

func NewTransitionCommands(uow shared.UnitOfWork, clk clock.Clock, notifier Notifier) TransitionCommands {
	return &transitionCommandsImpl{
		uow:      uow,
		clock:    clk,
		notifier: notifier,
	}
}

// TransitionStatus applies one status change through the entity's transition
// table. The current status is re-read under a row lock inside the
// transaction and the update is conditional on it, so a concurrent change
// surfaces as ErrConflictingUpdate rather than a silent lost update. Side
// effects declared by the table (signedAt, paidAt, draft contract creation)
// are applied in the same transaction.
func (t *transitionCommandsImpl) TransitionStatus(
	ctx context.Context,
	entity TransitionEntity,
	id uuid.UUID,
	requested string,
	actorID uuid.UUID,
) (*TransitionResult, error) {
	var (
		result    *TransitionResult
		recipient uuid.UUID
	)

	err := t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		switch entity {
		case EntityBooking:
			result, recipient, err = t.transitionBooking(ctx, tx, id, requested, actorID)
		case EntityContract:
			result, recipient, err = t.transitionContract(ctx, tx, id, requested, actorID)
		case EntityPayment:
			result, recipient, err = t.transitionPayment(ctx, tx, id, requested, actorID)
		case EntityDeal:
			result, recipient, err = t.transitionDeal(ctx, tx, id, requested, actorID)
		default:
			err = ErrNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if recipient != uuid.Nil {
		t.notifier.Notify(ctx, recipient, EventStatusChanged, map[string]any{
			"entity": string(result.Entity),
			"id":     result.ID,
			"from":   result.From,
			"to":     result.To,
		})
	}

	return result, nil
}

func (t *transitionCommandsImpl) transitionBooking(
	ctx context.Context,
	tx shared.Tx,
	id uuid.UUID,
	requested string,
	actorID uuid.UUID,
) (*TransitionResult, uuid.UUID, error) {
	snap, err := tx.Bookings().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, uuid.Nil, mapLoadErr(err)
	}
	prop, err := tx.Properties().FindByID(ctx, snap.PropertyID)
	if err != nil {
		return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	role, ok := party.Resolve(actorID, prop.OwnerID, snap.TenantID)
	if !ok {
		return nil, uuid.Nil, ErrForbidden
	}

	next := booking.Status(requested)
	if !next.IsValid() {
		return nil, uuid.Nil, ErrIllegalTransition
	}
	decision, err := booking.Transitions.Decide(snap.Status, next, role)
	if err != nil {
		return nil, uuid.Nil, mapDecisionErr(err)
	}

	affected, err := tx.Bookings().UpdateStatus(ctx, id, snap.Status, next)
	if err != nil {
		return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return nil, uuid.Nil, ErrConflictingUpdate
	}

	result := &TransitionResult{
		Entity: EntityBooking,
		ID:     id,
		From:   snap.Status.String(),
		To:     next.String(),
	}

	if decision.Declares(transition.EffectCreateDraftContract) {
		period := booking.ReconstructDateRange(snap.StartsAt, snap.EndsAt)
		draft, err := contract.NewDraft(nil, prop.ID, prop.OwnerID, snap.TenantID, period, prop.MonthlyRentCents, prop.DepositCents)
		if err != nil {
			return nil, uuid.Nil, errs.Mark(err, ErrInvalidTerms)
		}
		cid, err := tx.Contracts().Create(ctx, draft)
		if err != nil {
			return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result.ContractID = &cid
	}

	return result, counterparty(role, prop.OwnerID, snap.TenantID), nil
}

func (t *transitionCommandsImpl) transitionContract(
	ctx context.Context,
	tx shared.Tx,
	id uuid.UUID,
	requested string,
	actorID uuid.UUID,
) (*TransitionResult, uuid.UUID, error) {
	snap, err := tx.Contracts().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, uuid.Nil, mapLoadErr(err)
	}

	role, ok := party.Resolve(actorID, snap.LandlordID, snap.TenantID)
	if !ok {
		return nil, uuid.Nil, ErrForbidden
	}

	next := contract.Status(requested)
	if !next.IsValid() {
		return nil, uuid.Nil, ErrIllegalTransition
	}
	decision, err := contract.Transitions.Decide(snap.Status, next, role)
	if err != nil {
		return nil, uuid.Nil, mapDecisionErr(err)
	}

	var signedAt *time.Time
	if decision.Declares(transition.EffectSetSignedAt) && snap.SignedAt == nil {
		now := t.clock.Now()
		signedAt = &now
	}

	affected, err := tx.Contracts().UpdateStatus(ctx, id, snap.Status, next, signedAt)
	if err != nil {
		return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return nil, uuid.Nil, ErrConflictingUpdate
	}

	result := &TransitionResult{
		Entity: EntityContract,
		ID:     id,
		From:   snap.Status.String(),
		To:     next.String(),
	}
	return result, counterparty(role, snap.LandlordID, snap.TenantID), nil
}

func (t *transitionCommandsImpl) transitionPayment(
	ctx context.Context,
	tx shared.Tx,
	id uuid.UUID,
	requested string,
	actorID uuid.UUID,
) (*TransitionResult, uuid.UUID, error) {
	snap, err := tx.Payments().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, uuid.Nil, mapLoadErr(err)
	}

	landlordID, tenantID, err := t.paymentParties(ctx, tx, snap)
	if err != nil {
		return nil, uuid.Nil, err
	}

	role, ok := party.Resolve(actorID, landlordID, tenantID)
	if !ok {
		return nil, uuid.Nil, ErrForbidden
	}

	next := payment.Status(requested)
	if !next.IsValid() {
		return nil, uuid.Nil, ErrIllegalTransition
	}
	decision, err := payment.Transitions.Decide(snap.Status, next, role)
	if err != nil {
		return nil, uuid.Nil, mapDecisionErr(err)
	}

	var paidAt *time.Time
	if decision.Declares(transition.EffectSetPaidAt) && snap.PaidAt == nil {
		now := t.clock.Now()
		paidAt = &now
	}

	affected, err := tx.Payments().UpdateStatus(ctx, id, snap.Status, next, paidAt)
	if err != nil {
		return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return nil, uuid.Nil, ErrConflictingUpdate
	}

	result := &TransitionResult{
		Entity: EntityPayment,
		ID:     id,
		From:   snap.Status.String(),
		To:     next.String(),
	}
	return result, counterparty(role, landlordID, tenantID), nil
}

func (t *transitionCommandsImpl) transitionDeal(
	ctx context.Context,
	tx shared.Tx,
	id uuid.UUID,
	requested string,
	actorID uuid.UUID,
) (*TransitionResult, uuid.UUID, error) {
	snap, err := tx.Deals().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, uuid.Nil, mapLoadErr(err)
	}

	role, ok := party.Resolve(actorID, snap.LandlordID, snap.TenantID)
	if !ok {
		return nil, uuid.Nil, ErrForbidden
	}

	next := deal.Status(requested)
	if !next.IsValid() {
		return nil, uuid.Nil, ErrIllegalTransition
	}
	if _, err := deal.Transitions.Decide(snap.Status, next, role); err != nil {
		return nil, uuid.Nil, mapDecisionErr(err)
	}

	affected, err := tx.Deals().UpdateStatus(ctx, id, snap.Status, next)
	if err != nil {
		return nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return nil, uuid.Nil, ErrConflictingUpdate
	}

	result := &TransitionResult{
		Entity: EntityDeal,
		ID:     id,
		From:   snap.Status.String(),
		To:     next.String(),
	}
	return result, counterparty(role, snap.LandlordID, snap.TenantID), nil
}

// paymentParties resolves the landlord/tenant pair a payment belongs to,
// through its deal when present, else its contract, else the property owner
// alone.
func (t *transitionCommandsImpl) paymentParties(ctx context.Context, tx shared.Tx, snap *shared.PaymentSnapshot) (uuid.UUID, uuid.UUID, error) {
	switch {
	case snap.DealID != nil:
		dl, err := tx.Deals().FindByID(ctx, *snap.DealID)
		if err != nil {
			return uuid.Nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return dl.LandlordID, dl.TenantID, nil
	case snap.ContractID != nil:
		ct, err := tx.Contracts().FindByID(ctx, *snap.ContractID)
		if err != nil {
			return uuid.Nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return ct.LandlordID, ct.TenantID, nil
	default:
		prop, err := tx.Properties().FindByID(ctx, snap.PropertyID)
		if err != nil {
			return uuid.Nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return prop.OwnerID, uuid.Nil, nil
	}
}

func counterparty(role party.Role, landlordID, tenantID uuid.UUID) uuid.UUID {
	if role == party.RoleLandlord {
		return tenantID
	}
	return landlordID
}

func mapLoadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrNotFound
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func mapDecisionErr(err error) error {
	switch {
	case errors.Is(err, transition.ErrRoleNotAllowed):
		return ErrForbidden
	case errors.Is(err, transition.ErrIllegalTransition):
		return ErrIllegalTransition
	default:
		return errs.Mark(err, ErrIllegalTransition)
	}
}
