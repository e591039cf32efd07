package formatter

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/meetcost/internal/domain"
	"github.com/alexanderramin/meetcost/internal/store"
	"github.com/charmbracelet/lipgloss"
)

// Euro formats an amount as a euro string with two decimals.
func Euro(amount float64) string {
	return fmt.Sprintf("€%.2f", amount)
}

// Hours formats an hour total with one decimal, matching the rounding the
// aggregator applies.
func Hours(h float64) string {
	return fmt.Sprintf("%.1f h", h)
}

// FormatReport renders the full analysis report: summary cards, the
// per-meeting table, and the attendee sections.
func FormatReport(r *domain.Report) string {
	var b strings.Builder

	b.WriteString(FormatReportHeader(r))

	if len(r.Groups) == 0 {
		b.WriteString(Dim("No billable meetings found.") + "\n")
		return b.String()
	}

	b.WriteString(GroupTable(r.Groups, r.Rate))
	b.WriteString(attendeeSection(r))
	return b.String()
}

// FormatReportHeader renders the summary cards and section heading shown
// above the group table in both the plain and interactive views.
func FormatReportHeader(r *domain.Report) string {
	var b strings.Builder
	b.WriteString(summaryCards(r))
	b.WriteString("\n")
	b.WriteString(StyleBold.Render("Meeting Summary"))
	b.WriteString("\n")
	if r.Timespan != nil {
		b.WriteString(Dim(r.Timespan.RelativeLabel))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// GroupTable renders the per-meeting breakdown with the currently selected
// role's rate applied to each group.
func GroupTable(groups []domain.MeetingGroup, rate float64) string {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			fmt.Sprintf("%.1f", g.TotalHours),
			truncate(g.Title, 40),
			fmt.Sprintf("%d", g.Occurrences),
			Cost(Euro(g.TotalHours*rate), g.TotalHours < 0),
		})
	}
	return RenderTable([]string{"Hrs", "Event", "Count", "Cost"}, rows)
}

func summaryCards(r *domain.Report) string {
	cost := StyleCard.Render(
		StyleBlue.Bold(true).Render(Euro(r.TotalCost)) + "\n" + Dim("Total Cost"))
	hours := StyleCard.Render(
		StyleBlue.Bold(true).Render(Hours(r.TotalHours)) + "\n" + Dim("Total Hours"))
	role := StyleCard.Render(
		StyleFg.Bold(true).Render(string(r.Role)) + "\n" + Dim(fmt.Sprintf("%s/hour", Euro(r.Rate))))

	return lipgloss.JoinHorizontal(lipgloss.Top, cost, " ", hours, " ", role) + "\n"
}

func attendeeSection(r *domain.Report) string {
	if len(r.TopPeople) == 0 && r.OneOnOne == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(StyleBold.Render("People"))
	b.WriteString("\n")

	for i, p := range r.TopPeople {
		fmt.Fprintf(&b, "  %d. %s %s\n", i+1, p.Name, Dim(fmt.Sprintf("(%d meetings)", p.Meetings)))
	}
	if r.OneOnOne != nil {
		fmt.Fprintf(&b, "  Most frequent 1:1: %s %s\n",
			StyleGreen.Render(r.OneOnOne.Name), Dim(fmt.Sprintf("(%d meetings)", r.OneOnOne.Meetings)))
	}
	return b.String()
}

// FormatHistory renders stored analysis runs, newest first.
func FormatHistory(runs []*store.Run) string {
	if len(runs) == 0 {
		return Dim("No analysis runs recorded.") + "\n"
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		span := "-"
		if run.FirstEvent != nil && run.LastEvent != nil {
			span = fmt.Sprintf("%s – %s",
				run.FirstEvent.Format("2 Jan 2006"), run.LastEvent.Format("2 Jan 2006"))
		}
		rows = append(rows, []string{
			run.CreatedAt.Local().Format(time.DateTime),
			truncate(filepath.Base(run.SourceFile), 32),
			string(run.Role),
			fmt.Sprintf("%d", run.GroupCount),
			fmt.Sprintf("%.1f", run.TotalHours),
			Euro(run.TotalCost),
			span,
		})
	}
	return RenderTable([]string{"When", "File", "Role", "Groups", "Hours", "Cost", "Timespan"}, rows)
}

// FormatRates renders the role/rate table backing the role selector.
func FormatRates(rates domain.RateTable) string {
	rows := make([][]string, 0, len(rates))
	for _, role := range domain.Roles() {
		rows = append(rows, []string{string(role), Euro(rates[role]) + "/hour"})
	}
	return RenderTable([]string{"Role", "Rate"}, rows)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
