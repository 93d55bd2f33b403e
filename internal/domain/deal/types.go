package deal

import "rental-core/internal/domain/transition"

type Status string

const (
	StatusDraft      Status = "draft"
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
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

// Transitions: the landlord drives the pipeline forward; either party may
// cancel a live deal.
var Transitions = transition.Table[Status]{
	StatusDraft: {
		StatusNew:       {Roles: transition.LandlordOnly()},
		StatusCancelled: {Roles: transition.Either()},
	},
	StatusNew: {
		StatusInProgress: {Roles: transition.LandlordOnly()},
		StatusCancelled:  {Roles: transition.Either()},
	},
	StatusInProgress: {
		StatusCompleted: {Roles: transition.LandlordOnly()},
		StatusCancelled: {Roles: transition.Either()},
	},
	StatusCompleted: {},
	StatusCancelled: {},
}
