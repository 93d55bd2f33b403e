package booking

// Window is an existing reservation's date range together with its status,
// as loaded for one property.
type Window struct {
	Range  DateRange
	Status Status
}

// HasConflict reports whether the candidate range overlaps any existing
// blocking reservation. Cancelled and completed reservations never conflict;
// abutting ranges (candidate.start == existing.end or vice versa) are legal
// under half-open semantics.
//
// The caller must run this inside the same transaction as the insert of the
// new booking, with the property's booking set locked, or two concurrent
// requests can both observe "no conflict".
func HasConflict(candidate DateRange, existing []Window) bool {
	for _, w := range existing {
		if !w.Status.Blocking() {
			continue
		}
		if candidate.Overlaps(w.Range) {
			return true
		}
	}
	return false
}
