package booking

import "rental-core/internal/domain/transition"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
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

// Blocking reports whether a booking in this status reserves its date range.
// Only pending and confirmed bookings participate in conflict detection.
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Transitions: the landlord confirms and completes; either party may cancel
// while the booking is still live. Confirming declares the draft-contract
// side effect for the caller to apply.
var Transitions = transition.Table[Status]{
	StatusPending: {
		StatusConfirmed: {
			Roles:   transition.LandlordOnly(),
			Effects: []transition.Effect{transition.EffectCreateDraftContract},
		},
		StatusCancelled: {Roles: transition.Either()},
	},
	StatusConfirmed: {
		StatusCompleted: {Roles: transition.LandlordOnly()},
		StatusCancelled: {Roles: transition.Either()},
	},
	StatusCompleted: {},
	StatusCancelled: {},
}
