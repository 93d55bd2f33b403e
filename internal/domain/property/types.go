package property

type Status string

const (
	StatusAvailable   Status = "available"
	StatusDraft       Status = "draft"
	StatusMaintenance Status = "maintenance"
	StatusRented      Status = "rented"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusDraft, StatusMaintenance, StatusRented:
		return true
	default:
		return false
	}
}

// Bookable reports whether new reservation requests are accepted.
func (s Status) Bookable() bool {
	return s == StatusAvailable
}
