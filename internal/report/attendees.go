package report

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/meetcost/internal/domain"
)

// topPeopleCount is how many collaborators appear in the report after the
// calendar owner is dropped.
const topPeopleCount = 3

// TopAttendees ranks required attendees by how many past meetings they
// appeared in, drops the single highest-ranked name, and returns the next
// three. The calendar owner is a required attendee on their own meetings
// and therefore always holds rank 0; dropping it keeps the owner out of
// their own collaborator list. Returns nil when no past events exist.
func TopAttendees(events []domain.Event, now time.Time) []domain.AttendeeFrequency {
	ranked := countAttendees(events, now, nil)
	if len(ranked) <= 1 {
		return nil
	}
	ranked = ranked[1:]
	if len(ranked) > topPeopleCount {
		ranked = ranked[:topPeopleCount]
	}
	return ranked
}

// TopOneOnOne finds the most frequent one-on-one partner: over past events
// with exactly two required attendees, the non-self name seen most often.
// selfIdentifiers are case-insensitive substrings that mark the calendar
// owner's own entry. Returns nil when no qualifying meetings exist.
func TopOneOnOne(events []domain.Event, now time.Time, selfIdentifiers []string) *domain.AttendeeFrequency {
	paired := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		if len(ev.Attendees) == 2 {
			paired = append(paired, ev)
		}
	}

	ranked := countAttendees(paired, now, selfIdentifiers)
	if len(ranked) == 0 {
		return nil
	}
	top := ranked[0]
	return &top
}

// countAttendees tallies meetings per attendee across events that started
// by now, skipping names that match any self identifier. The result is
// ordered by count descending; ties keep first-seen order.
func countAttendees(events []domain.Event, now time.Time, selfIdentifiers []string) []domain.AttendeeFrequency {
	counts := make(map[string]int)
	var order []string

	for _, ev := range events {
		if ev.StartAt.After(now) {
			continue
		}
		for _, name := range ev.Attendees {
			if isSelf(name, selfIdentifiers) {
				continue
			}
			if _, ok := counts[name]; !ok {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	ranked := make([]domain.AttendeeFrequency, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, domain.AttendeeFrequency{Name: name, Meetings: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Meetings > ranked[j].Meetings
	})
	return ranked
}

func isSelf(name string, selfIdentifiers []string) bool {
	lower := strings.ToLower(name)
	for _, id := range selfIdentifiers {
		if id == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(id)) {
			return true
		}
	}
	return false
}
