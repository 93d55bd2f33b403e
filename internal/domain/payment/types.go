package payment

import "rental-core/internal/domain/transition"

type Type string

const (
	TypeRent        Type = "rent"
	TypeUtilities   Type = "utilities"
	TypeDeposit     Type = "deposit"
	TypeMaintenance Type = "maintenance"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeRent, TypeUtilities, TypeDeposit, TypeMaintenance:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return Transitions.IsValid(s)
}

func (s Status) IsTerminal() bool {
	return Transitions.IsTerminal(s)
}

// Transitions: the tenant (or landlord on their behalf) can start a payment;
// settlement outcomes and refunds are recorded by the landlord. paidAt is
// stamped on first entry to completed, declared as an effect.
var Transitions = transition.Table[Status]{
	StatusPending: {
		StatusProcessing: {Roles: transition.Either()},
		StatusCompleted: {
			Roles:   transition.LandlordOnly(),
			Effects: []transition.Effect{transition.EffectSetPaidAt},
		},
		StatusCancelled: {Roles: transition.LandlordOnly()},
	},
	StatusProcessing: {
		StatusCompleted: {
			Roles:   transition.LandlordOnly(),
			Effects: []transition.Effect{transition.EffectSetPaidAt},
		},
		StatusFailed:    {Roles: transition.Either()},
		StatusCancelled: {Roles: transition.LandlordOnly()},
	},
	StatusCompleted: {
		StatusRefunded: {Roles: transition.LandlordOnly()},
	},
	StatusFailed: {
		StatusPending: {Roles: transition.Either()},
	},
	StatusCancelled: {
		StatusPending: {Roles: transition.LandlordOnly()},
	},
	StatusRefunded: {},
}
