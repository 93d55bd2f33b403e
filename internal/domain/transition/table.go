package transition

import (
	"errors"

	"rental-core/internal/domain/party"
)

var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrRoleNotAllowed    = errors.New("role not allowed for transition")
)

// Effect is a side effect the caller must apply together with the status
// update. The table declares effects; it never executes them.
type Effect string

const (
	EffectSetSignedAt         Effect = "set_signed_at"
	EffectSetPaidAt           Effect = "set_paid_at"
	EffectCreateDraftContract Effect = "create_draft_contract"
)

type Rule struct {
	Roles   []party.Role
	Effects []Effect
}

func (r Rule) allows(role party.Role) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Table is a per-entity state machine: current status -> allowed next
// statuses, each gated by actor role. Terminal statuses map to an empty set,
// so a terminal-to-itself move is rejected like any other illegal one.
type Table[S ~string] map[S]map[S]Rule

// Decision is what a successful table lookup yields: the effects the caller
// must apply atomically with the status update.
type Decision struct {
	Effects []Effect
}

func (d Decision) Declares(e Effect) bool {
	for _, eff := range d.Effects {
		if eff == e {
			return true
		}
	}
	return false
}

func (t Table[S]) Decide(current, next S, role party.Role) (Decision, error) {
	nexts, ok := t[current]
	if !ok {
		return Decision{}, ErrIllegalTransition
	}
	rule, ok := nexts[next]
	if !ok {
		return Decision{}, ErrIllegalTransition
	}
	if !rule.allows(role) {
		return Decision{}, ErrRoleNotAllowed
	}
	return Decision{Effects: rule.Effects}, nil
}

func (t Table[S]) CanTransition(current, next S) bool {
	nexts, ok := t[current]
	if !ok {
		return false
	}
	_, ok = nexts[next]
	return ok
}

func (t Table[S]) IsValid(s S) bool {
	_, ok := t[s]
	return ok
}

func (t Table[S]) IsTerminal(s S) bool {
	nexts, ok := t[s]
	if !ok {
		return false
	}
	return len(nexts) == 0
}

func Either() []party.Role {
	return []party.Role{party.RoleLandlord, party.RoleTenant}
}

func LandlordOnly() []party.Role {
	return []party.Role{party.RoleLandlord}
}
