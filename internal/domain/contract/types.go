package contract

import "rental-core/internal/domain/transition"

type Status string

const (
	StatusDraft      Status = "draft"
	StatusActive     Status = "active"
	StatusExpired    Status = "expired"
	StatusTerminated Status = "terminated"
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

// Transitions: either party may sign a draft into active (stamping signedAt
// once), either party may terminate, but only the landlord expires a contract
// (normally through the time-based sweep).
var Transitions = transition.Table[Status]{
	StatusDraft: {
		StatusActive: {
			Roles:   transition.Either(),
			Effects: []transition.Effect{transition.EffectSetSignedAt},
		},
	},
	StatusActive: {
		StatusTerminated: {Roles: transition.Either()},
		StatusExpired:    {Roles: transition.LandlordOnly()},
	},
	StatusExpired:    {},
	StatusTerminated: {},
}

// TermsAmendable reports whether the financial fields (monthly rent, deposit,
// free-form terms) may still change: only while draft, and only by the
// landlord.
func TermsAmendable(s Status, isLandlord bool) bool {
	return s == StatusDraft && isLandlord
}
