package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/meetcost/internal/domain"
	"github.com/alexanderramin/meetcost/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Role: domain.RoleSoftwareEngineer,
		Rate: 70,
		Groups: []domain.MeetingGroup{
			{Title: "Standup", Occurrences: 10, TotalHours: 2.5},
			{Title: "Sprint Planning", Occurrences: 2, TotalHours: 4.0},
		},
		TotalHours: 6.5,
		TotalCost:  455,
		Timespan: &domain.Timespan{
			First:         time.Date(2025, time.June, 1, 9, 0, 0, 0, time.Local),
			Last:          time.Date(2025, time.June, 20, 9, 0, 0, 0, time.Local),
			Label:         "From 1 Jun 2025 to 20 Jun 2025",
			RelativeLabel: "From 2 months ago to 1 month ago",
			GapLabel:      "2 weeks",
		},
		TopPeople: []domain.AttendeeFrequency{
			{Name: "Alice", Meetings: 8},
			{Name: "Bob", Meetings: 5},
		},
		OneOnOne: &domain.AttendeeFrequency{Name: "Dana", Meetings: 4},
	}
}

func TestEuro(t *testing.T) {
	assert.Equal(t, "€455.00", Euro(455))
	assert.Equal(t, "€0.00", Euro(0))
	assert.Equal(t, "€-17.50", Euro(-17.5))
}

func TestHours(t *testing.T) {
	assert.Equal(t, "6.5 h", Hours(6.5))
	assert.Equal(t, "0.0 h", Hours(0))
}

func TestFormatReport_Sections(t *testing.T) {
	out := FormatReport(sampleReport())

	assert.Contains(t, out, "€455.00")
	assert.Contains(t, out, "Total Cost")
	assert.Contains(t, out, "6.5 h")
	assert.Contains(t, out, "Total Hours")
	assert.Contains(t, out, "Meeting Summary")
	assert.Contains(t, out, "From 2 months ago to 1 month ago")
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "Sprint Planning")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Most frequent 1:1: Dana")
}

func TestFormatReport_Empty(t *testing.T) {
	rep := &domain.Report{Role: domain.RoleQA, Rate: 30}
	out := FormatReport(rep)
	assert.Contains(t, out, "No billable meetings found.")
	assert.NotContains(t, out, "People")
}

func TestGroupTable_CostUsesGivenRate(t *testing.T) {
	groups := []domain.MeetingGroup{{Title: "Standup", Occurrences: 2, TotalHours: 0.5}}
	out := GroupTable(groups, 40)
	assert.Contains(t, out, "€20.00")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"Name", "Count"},
		[][]string{
			{"a", "1"},
			{"longer name", "20"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4) // header, separator, two rows
	assert.Contains(t, lines[2], "a")
	assert.Contains(t, lines[3], "longer name")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestFormatRates_ListsAllRolesInOrder(t *testing.T) {
	out := FormatRates(domain.DefaultRates())

	for _, role := range domain.Roles() {
		assert.Contains(t, out, string(role))
	}
	assert.Less(t,
		strings.Index(out, "Software Engineer"),
		strings.Index(out, "DevOps"))
	assert.Contains(t, out, "€70.00/hour")
}

func TestFormatHistory(t *testing.T) {
	first := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	last := time.Date(2025, time.June, 20, 9, 0, 0, 0, time.UTC)
	runs := []*store.Run{
		{
			ID:         "run-1",
			SourceFile: "calendar.csv",
			Role:       domain.RoleQA,
			GroupCount: 3,
			TotalHours: 6.5,
			TotalCost:  195,
			FirstEvent: &first,
			LastEvent:  &last,
			CreatedAt:  time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	out := FormatHistory(runs)
	assert.Contains(t, out, "calendar.csv")
	assert.Contains(t, out, "QA")
	assert.Contains(t, out, "€195.00")
	assert.Contains(t, out, "1 Jun 2025")
}

func TestFormatHistory_Empty(t *testing.T) {
	assert.Contains(t, FormatHistory(nil), "No analysis runs recorded.")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "truncated…", truncate("truncated here", 10))
}
