package commands

import "rental-core/internal/pkg/errs"

// Expected, typed outcomes returned to callers. The boundary layer maps each
// to a 4xx-style response; none are retried here.
var (
	ErrInvalidRange        = errs.New("start date must be before end date")
	ErrPropertyUnavailable = errs.New("property is not available for booking")
	ErrSelfBooking         = errs.New("owner cannot book their own property")
	ErrDateConflict        = errs.New("date range conflicts with an existing booking")
	ErrNotFound            = errs.New("entity not found")
	ErrForbidden           = errs.New("actor is not allowed to perform this operation")
	ErrIllegalTransition   = errs.New("status transition is not allowed")
	ErrConflictingUpdate   = errs.New("entity was modified concurrently")
	ErrInvalidTerms        = errs.New("commercial terms are missing or invalid")
	ErrInvalidAction       = errs.New("removal action must be archive or delete")

	// Marker for unexpected infrastructure failures, distinct from the
	// taxonomy above.
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
