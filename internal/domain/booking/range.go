package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRange = errors.New("start date must be before end date")

// DateRange is a half-open interval [start, end). Two ranges that merely
// touch at an endpoint do not overlap.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if !start.Before(end) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{start: start, end: end}, nil
}

// ReconstructDateRange rehydrates a range already validated at insert time.
func ReconstructDateRange(start, end time.Time) DateRange {
	return DateRange{start: start, end: end}
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

func (r DateRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

func (r DateRange) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format(time.RFC3339), r.end.Format(time.RFC3339))
}
