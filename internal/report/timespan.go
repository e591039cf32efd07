package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/meetcost/internal/domain"
	"github.com/dustin/go-humanize"
)

// EventTimespan computes the first/last start time across events that have
// already started by now. Recurring series exported ahead of time produce
// future-dated rows, which must not stretch the range. Returns nil when no
// event qualifies.
func EventTimespan(events []domain.Event, now time.Time) *domain.Timespan {
	var first, last time.Time
	found := false

	for _, ev := range events {
		if ev.StartAt.After(now) {
			continue
		}
		if !found {
			first, last = ev.StartAt, ev.StartAt
			found = true
			continue
		}
		if ev.StartAt.Before(first) {
			first = ev.StartAt
		}
		if ev.StartAt.After(last) {
			last = ev.StartAt
		}
	}
	if !found {
		return nil
	}

	return &domain.Timespan{
		First:         first,
		Last:          last,
		Label:         fmt.Sprintf("From %s to %s", first.Format("2 Jan 2006"), last.Format("2 Jan 2006")),
		RelativeLabel: fmt.Sprintf("From %s to %s", humanize.Time(first), humanize.Time(last)),
		GapLabel:      spanGap(first, last),
	}
}

// spanGap renders the distance between the two endpoints without the
// ago/from-now suffix humanize.Time would add.
func spanGap(first, last time.Time) string {
	return strings.TrimSpace(humanize.RelTime(first, last, "", ""))
}
