package domain

import "time"

// MeetingGroup is the accumulated summary for one distinct meeting title.
// Grouping is by exact title string; fuzzy matching is deliberately not done.
type MeetingGroup struct {
	Title       string
	Occurrences int
	TotalHours  float64  // rounded to one decimal place after summation
	Attendees   []string // attendee list of the last contributing event
}

// AttendeeFrequency counts how many meetings a person appeared in.
type AttendeeFrequency struct {
	Name     string
	Meetings int
}

// Timespan describes the range of past event start times.
type Timespan struct {
	First time.Time
	Last  time.Time

	// Presentation labels. Not re-parseable; compare First/Last in tests.
	Label         string // "From 2 Jan 2025 to 30 Jun 2025"
	RelativeLabel string // "From 3 months ago to 2 days ago"
	GapLabel      string // "5 months"
}

// Report is the full analysis result for one ingestion run. It is a value
// rebuilt from scratch whenever the event set or the selected role changes;
// nothing in it is updated incrementally.
type Report struct {
	Role       Role
	Rate       float64
	Groups     []MeetingGroup // ordered by Occurrences descending
	TotalHours float64
	TotalCost  float64
	Timespan   *Timespan // nil when no past events exist
	TopPeople  []AttendeeFrequency
	OneOnOne   *AttendeeFrequency // nil when no two-person meetings exist
}
