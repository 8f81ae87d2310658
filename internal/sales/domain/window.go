package domain

import "time"

// Window is a closed time interval [Start, End]. A sale falls inside the
// window when its occurredAt is neither before Start nor after End.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies within the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DayWindow returns the calendar day containing asOf, evaluated in loc.
// Day boundaries depend on the zone, so the ledger pins one in configuration.
func DayWindow(asOf time.Time, loc *time.Location) Window {
	t := asOf.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}
}

// PreviousMonthWindow returns the full calendar month before the one
// containing asOf, evaluated in loc. A fixed month is reproducible where a
// rolling 30-day window shifts with the clock.
func PreviousMonthWindow(asOf time.Time, loc *time.Location) Window {
	t := asOf.In(loc)
	startOfCurrent := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	return Window{
		Start: startOfCurrent.AddDate(0, -1, 0),
		End:   startOfCurrent.Add(-time.Nanosecond),
	}
}
