package commands

import (
	"context"

	"rental-core/internal/domain/cascade"
	"rental-core/internal/domain/property"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type RemovalSummary struct {
	Action cascade.Action
	// Counts holds affected rows per entity kind, the root included.
	Counts map[cascade.Kind]int64
}

type RemovalCommands interface {
	RemoveEntity(ctx context.Context, kind cascade.Kind, id uuid.UUID, action cascade.Action, actorID uuid.UUID) (*RemovalSummary, error)
}

type removalCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
}

func NewRemovalCommands(uow shared.UnitOfWork, notifier Notifier) RemovalCommands {
	return &removalCommandsImpl{
		uow:      uow,
		notifier: notifier,
	}
}

// RemoveEntity walks the dependency graph from the root and applies the
// action to every dependent before the root, all in one transaction: deletes
// run bottom-up so no dangling reference exists mid-operation, archive sets
// each kind's terminal status instead. Only the owner may remove an entity.
func (r *removalCommandsImpl) RemoveEntity(
	ctx context.Context,
	kind cascade.Kind,
	id uuid.UUID,
	action cascade.Action,
	actorID uuid.UUID,
) (*RemovalSummary, error) {
	if !action.IsValid() {
		return nil, ErrInvalidAction
	}
	order, err := cascade.Plan(kind)
	if err != nil {
		return nil, errs.Mark(err, ErrNotFound)
	}

	summary := &RemovalSummary{
		Action: action,
		Counts: make(map[cascade.Kind]int64, len(order)),
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ownerID, err := r.rootOwner(ctx, tx, kind, id)
		if err != nil {
			return err
		}
		if ownerID != actorID {
			return ErrForbidden
		}

		dealIDs, contractIDs, err := r.resolveDependents(ctx, tx, kind, id)
		if err != nil {
			return err
		}

		for _, step := range order {
			count, err := r.applyStep(ctx, tx, step, action, kind, id, dealIDs, contractIDs)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			summary.Counts[step] = count
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.notifier.Notify(ctx, actorID, EventEntityRemoved, map[string]any{
		"kind":   string(kind),
		"id":     id,
		"action": string(action),
	})

	return summary, nil
}

func (r *removalCommandsImpl) rootOwner(ctx context.Context, tx shared.Tx, kind cascade.Kind, id uuid.UUID) (uuid.UUID, error) {
	switch kind {
	case cascade.KindProperty:
		prop, err := tx.Properties().FindByIDForUpdate(ctx, id)
		if err != nil {
			return uuid.Nil, mapLoadErr(err)
		}
		return prop.OwnerID, nil
	case cascade.KindClient:
		cl, err := tx.Clients().FindByID(ctx, id)
		if err != nil {
			return uuid.Nil, mapLoadErr(err)
		}
		return cl.OwnerID, nil
	case cascade.KindDeal:
		dl, err := tx.Deals().FindByIDForUpdate(ctx, id)
		if err != nil {
			return uuid.Nil, mapLoadErr(err)
		}
		return dl.LandlordID, nil
	case cascade.KindContract:
		ct, err := tx.Contracts().FindByIDForUpdate(ctx, id)
		if err != nil {
			return uuid.Nil, mapLoadErr(err)
		}
		return ct.LandlordID, nil
	default:
		return uuid.Nil, ErrNotFound
	}
}

// resolveDependents collects the deal and contract id sets the bulk
// operations are keyed by. Payments are reached through either set.
// Contracts are collected through the deal set and directly off the root,
// because a confirmed booking creates a contract with no deal behind it.
func (r *removalCommandsImpl) resolveDependents(ctx context.Context, tx shared.Tx, kind cascade.Kind, id uuid.UUID) ([]uuid.UUID, []uuid.UUID, error) {
	var (
		dealIDs []uuid.UUID
		direct  []uuid.UUID
		err     error
	)

	switch kind {
	case cascade.KindProperty:
		if dealIDs, err = tx.Deals().IDsByProperty(ctx, id); err != nil {
			break
		}
		direct, err = tx.Contracts().IDsByProperty(ctx, id)
	case cascade.KindClient:
		if dealIDs, err = tx.Deals().IDsByClient(ctx, id); err != nil {
			break
		}
		direct, err = tx.Contracts().IDsByParty(ctx, id)
	case cascade.KindDeal:
		dealIDs = []uuid.UUID{id}
	case cascade.KindContract:
		return nil, []uuid.UUID{id}, nil
	}
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	viaDeals, err := tx.Contracts().IDsByDealIDs(ctx, dealIDs)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return dealIDs, mergeIDs(direct, viaDeals), nil
}

// mergeIDs unions the two sets keeping first-seen order.
func mergeIDs(a, b []uuid.UUID) []uuid.UUID {
	if len(a) == 0 {
		return b
	}
	seen := make(map[uuid.UUID]struct{}, len(a)+len(b))
	out := make([]uuid.UUID, 0, len(a)+len(b))
	for _, id := range a {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func (r *removalCommandsImpl) applyStep(
	ctx context.Context,
	tx shared.Tx,
	step cascade.Kind,
	action cascade.Action,
	root cascade.Kind,
	rootID uuid.UUID,
	dealIDs, contractIDs []uuid.UUID,
) (int64, error) {
	deleting := action == cascade.ActionDelete

	switch step {
	case cascade.KindPayment:
		if deleting {
			return tx.Payments().DeleteByParents(ctx, dealIDs, contractIDs)
		}
		return tx.Payments().CancelByParents(ctx, dealIDs, contractIDs)

	case cascade.KindContract:
		if deleting {
			return tx.Contracts().DeleteByIDs(ctx, contractIDs)
		}
		return tx.Contracts().TerminateByIDs(ctx, contractIDs)

	case cascade.KindDeal:
		if deleting {
			return tx.Deals().DeleteByIDs(ctx, dealIDs)
		}
		return tx.Deals().CancelByIDs(ctx, dealIDs)

	case cascade.KindProperty:
		if deleting {
			return tx.Properties().Delete(ctx, rootID)
		}
		return tx.Properties().UpdateStatus(ctx, rootID, property.StatusMaintenance)

	case cascade.KindClient:
		if deleting {
			return tx.Clients().Delete(ctx, rootID)
		}
		return tx.Clients().SetActive(ctx, rootID, false)

	default:
		return 0, cascade.ErrUnsupportedRoot
	}
}
