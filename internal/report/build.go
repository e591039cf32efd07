package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/meetcost/internal/domain"
	"github.com/alexanderramin/meetcost/internal/ingest"
)

// Options configures one report build. Everything now-dependent or
// identity-dependent is passed in explicitly; nothing is read from ambient
// state, so the same inputs always produce the same report.
type Options struct {
	Role            domain.Role
	Rates           domain.RateTable
	SelfIdentifiers []string
	Now             time.Time
}

// Build runs the whole pipeline over raw records: normalize, filter,
// aggregate, price, and derive timespan and attendee statistics. The
// report is a fresh value every time; changing the role means calling
// Build again, never patching totals in place.
//
// Empty or fully-filtered input is not an error: the result has no groups,
// zero totals, and absent timespan/attendee sections.
func Build(records []domain.RawRecord, opts Options) (*domain.Report, error) {
	rate, ok := opts.Rates[opts.Role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRole, opts.Role)
	}

	all, err := ingest.NormalizeAll(records)
	if err != nil {
		return nil, err
	}
	events := ingest.FilterValid(all)

	groups := Summarize(events)
	totalHours := TotalHours(groups)
	totalCost, err := CostFor(totalHours, opts.Role, opts.Rates)
	if err != nil {
		return nil, err
	}

	return &domain.Report{
		Role:       opts.Role,
		Rate:       rate,
		Groups:     groups,
		TotalHours: totalHours,
		TotalCost:  totalCost,
		Timespan:   EventTimespan(events, opts.Now),
		TopPeople:  TopAttendees(events, opts.Now),
		OneOnOne:   TopOneOnOne(events, opts.Now, opts.SelfIdentifiers),
	}, nil
}

// Prompt renders the deterministic analysis transcript handed to the
// external language-model collaborator. The core's responsibility ends at
// this string; no network call happens here.
func Prompt(r *domain.Report) string {
	span := "an unknown period"
	if r.Timespan != nil {
		span = r.Timespan.Label
	}

	var b strings.Builder
	b.WriteString("You're a productivity consultant.\n\n")
	fmt.Fprintf(&b, "User uploaded meeting data %s.\n", span)
	fmt.Fprintf(&b, "- Cost/hour: €%.0f\n", r.Rate)
	fmt.Fprintf(&b, "- This is 1 person's calendar with role of %s\n", r.Role)
	b.WriteString("- Cleaned: removed Lunch, Annual Leave, Cancelled, and empty\n\n")
	b.WriteString("Summary Table:\n")
	b.WriteString("| Event Name | Cost (€) |\n")
	b.WriteString("|------------|-----------|\n")
	for _, g := range r.Groups {
		fmt.Fprintf(&b, "| %s | %.2f € |\n", g.Title, g.TotalHours*r.Rate)
	}
	b.WriteString("\nPlease:\n")
	b.WriteString("1. Benchmark this meeting load\n")
	b.WriteString("2. Identify any excessive costs\n")
	b.WriteString("3. Recommend how to reduce meeting time/cost, compared to industry standards.\n")
	return b.String()
}
