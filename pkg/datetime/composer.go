package datetime

import (
	"fmt"
	"time"
)

// Composer builds absolute instants from loose calendar components, all in
// one fixed timezone.
type Composer struct {
	location *time.Location
}

// NewComposer creates a composer for the given IANA timezone string,
// e.g. "Europe/Berlin". An empty timezone means the process-local zone.
func NewComposer(timezone string) (*Composer, error) {
	if timezone == "" {
		return &Composer{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Composer{location: loc}, nil
}

// Location returns the zone the composer builds instants in.
func (c *Composer) Location() *time.Location {
	return c.location
}

// Compose builds the instant for the given wall-clock components, truncated
// to whole seconds. time.Date silently normalizes out-of-range components
// (February 30th rolls into March, hour 24 into the next day), so the
// result is read back field by field and rejected if anything moved. That
// also rejects wall-clock times skipped by a DST jump.
func (c *Composer) Compose(year, month, day, hour, minute int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, c.location)

	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, fmt.Errorf("no such wall clock time in %v: %d-%d-%d %d:%d", c.location, year, month, day, hour, minute)
	}
	return t, nil
}
