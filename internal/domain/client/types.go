package client

// Kind classifies a person record. The same person may appear as tenant on
// one deal and landlord on another; the kind is a default, not a restriction.
type Kind string

const (
	KindTenant   Kind = "tenant"
	KindLandlord Kind = "landlord"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindTenant, KindLandlord:
		return true
	default:
		return false
	}
}
