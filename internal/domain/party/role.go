package party

import "github.com/google/uuid"

// Role is the actor's relationship to the entity being acted on, not a global
// account role. The same user can be landlord on one entity and tenant on
// another.
type Role string

const (
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
)

func (r Role) String() string {
	return string(r)
}

// Resolve determines the actor's role relative to an entity's two parties.
// The second return is false when the actor is neither party.
func Resolve(actorID, landlordID, tenantID uuid.UUID) (Role, bool) {
	switch actorID {
	case landlordID:
		return RoleLandlord, true
	case tenantID:
		return RoleTenant, true
	default:
		return "", false
	}
}
