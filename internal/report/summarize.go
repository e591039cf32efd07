package report

import (
	"math"
	"sort"

	"github.com/alexanderramin/meetcost/internal/domain"
)

// Summarize groups events by exact title and accumulates occurrence counts
// and total hours per group. Hours are summed raw and rounded to one
// decimal place only at the end; events with a negative duration subtract
// from their group's total as-is (malformed or midnight-crossing source
// rows are visible in the output, not corrected).
//
// The result is ordered by occurrence count descending; ties keep the
// order in which the groups were first seen.
func Summarize(events []domain.Event) []domain.MeetingGroup {
	if len(events) == 0 {
		return nil
	}

	type accum struct {
		count     int
		hours     float64
		attendees []string
	}

	byTitle := make(map[string]*accum)
	var order []string

	for _, ev := range events {
		a, ok := byTitle[ev.Title]
		if !ok {
			a = &accum{}
			byTitle[ev.Title] = a
			order = append(order, ev.Title)
		}
		a.count++
		a.hours += ev.Hours()
		a.attendees = ev.Attendees
	}

	groups := make([]domain.MeetingGroup, 0, len(order))
	for _, title := range order {
		a := byTitle[title]
		groups = append(groups, domain.MeetingGroup{
			Title:       title,
			Occurrences: a.count,
			TotalHours:  round1(a.hours),
			Attendees:   a.attendees,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Occurrences > groups[j].Occurrences
	})
	return groups
}

// TotalHours sums the already-rounded per-group hours, matching how the
// headline figure is displayed next to the group table.
func TotalHours(groups []domain.MeetingGroup) float64 {
	var sum float64
	for _, g := range groups {
		sum += g.TotalHours
	}
	return sum
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
