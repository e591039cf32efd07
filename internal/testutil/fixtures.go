package testutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/meetcost/internal/domain"
)

// Record builds a raw calendar row in the exported-log column layout.
// start and end use the source format "D/M/YYYY H:M:S".
func Record(title, start, end string, attendees ...string) domain.RawRecord {
	rec := domain.RawRecord{"Subject": title}

	if start != "" {
		date, clock, _ := strings.Cut(start, " ")
		rec["Start Date"] = date
		rec["Start Time"] = clock
	}
	if end != "" {
		date, clock, _ := strings.Cut(end, " ")
		rec["End Date"] = date
		rec["End Time"] = clock
	}
	if len(attendees) > 0 {
		rec["Required Attendees"] = strings.Join(attendees, "; ")
	}
	return rec
}

// Event options
type EventOption func(*domain.Event)

func WithAttendees(names ...string) EventOption {
	return func(e *domain.Event) {
		e.Attendees = names
	}
}

func WithEnd(t time.Time) EventOption {
	return func(e *domain.Event) {
		e.EndAt = t
	}
}

// Event builds a normalized event starting at start with the given
// duration. Options override individual fields.
func Event(title string, start time.Time, d time.Duration, opts ...EventOption) domain.Event {
	e := domain.Event{
		Title:    title,
		StartAt:  start,
		EndAt:    start.Add(d),
		StartRaw: fmt.Sprintf("%d/%d/%d %d:%02d:%02d", start.Day(), int(start.Month()), start.Year(), start.Hour(), start.Minute(), start.Second()),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Date is shorthand for a local wall-clock instant, matching how the
// parser interprets source strings.
func Date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}
