package ingest

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/meetcost/internal/domain"
)

// Column names recognized in exported calendar logs. Anything else in a row
// is ignored; missing columns read as empty strings.
const (
	colSubject   = "Subject"
	colStartDate = "Start Date"
	colStartTime = "Start Time"
	colEndDate   = "End Date"
	colEndTime   = "End Time"
	colAttendees = "Required Attendees"
)

// Normalize maps one raw row into a typed Event. Every row produces an
// Event regardless of whether its title is billable; validity filtering is
// a separate step so that all downstream code sees fully-typed values.
// Date parse failures propagate rather than silently dropping the row.
func Normalize(raw domain.RawRecord) (domain.Event, error) {
	startRaw := joinDateTime(raw.Get(colStartDate), raw.Get(colStartTime))
	endRaw := joinDateTime(raw.Get(colEndDate), raw.Get(colEndTime))

	startAt, err := ParseDateTime(startRaw)
	if err != nil {
		return domain.Event{}, fmt.Errorf("start time: %w", err)
	}
	endAt, err := ParseDateTime(endRaw)
	if err != nil {
		return domain.Event{}, fmt.Errorf("end time: %w", err)
	}

	return domain.Event{
		Title:     raw.Get(colSubject),
		StartAt:   startAt,
		EndAt:     endAt,
		Attendees: splitAttendees(raw.Get(colAttendees)),
		StartRaw:  startRaw,
	}, nil
}

// NormalizeAll converts every raw row, failing on the first malformed row
// with its position in the file. Callers report the parse failure instead
// of dropping data.
func NormalizeAll(rows []domain.RawRecord) ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(rows))
	for i, row := range rows {
		ev, err := Normalize(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// FilterValid keeps only events whose title passes ValidTitle, preserving
// source order.
func FilterValid(events []domain.Event) []domain.Event {
	kept := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		if ValidTitle(ev.Title) {
			kept = append(kept, ev)
		}
	}
	return kept
}

func joinDateTime(date, clock string) string {
	return strings.TrimSpace(date + " " + clock)
}

func splitAttendees(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ";") {
		name := strings.TrimSpace(part)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
