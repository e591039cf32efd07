package report

import (
	"testing"
	"time"

	"github.com/alexanderramin/meetcost/internal/domain"
	"github.com/alexanderramin/meetcost/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_GroupsByExactTitle(t *testing.T) {
	start := testutil.Date(2025, time.June, 1, 9, 0)
	events := []domain.Event{
		testutil.Event("Standup", start, 15*time.Minute),
		testutil.Event("Standup", start.AddDate(0, 0, 1), 15*time.Minute),
	}

	groups := Summarize(events)
	require.Len(t, groups, 1)
	assert.Equal(t, "Standup", groups[0].Title)
	assert.Equal(t, 2, groups[0].Occurrences)
	assert.Equal(t, 0.5, groups[0].TotalHours)
}

func TestSummarize_TitleMatchIsCaseSensitive(t *testing.T) {
	start := testutil.Date(2025, time.June, 1, 9, 0)
	events := []domain.Event{
		testutil.Event("standup", start, 15*time.Minute),
		testutil.Event("Standup", start, 15*time.Minute),
	}

	groups := Summarize(events)
	assert.Len(t, groups, 2)
}

func TestSummarize_SortsByCountDescendingStable(t *testing.T) {
	start := testutil.Date(2025, time.June, 1, 9, 0)
	events := []domain.Event{
		testutil.Event("Retro", start, time.Hour),
		testutil.Event("Planning", start, time.Hour),
		testutil.Event("Standup", start, 15*time.Minute),
		testutil.Event("Standup", start, 15*time.Minute),
		testutil.Event("Standup", start, 15*time.Minute),
	}

	groups := Summarize(events)
	require.Len(t, groups, 3)
	assert.Equal(t, "Standup", groups[0].Title)
	// Retro and Planning tie on count; first-seen order is kept.
	assert.Equal(t, "Retro", groups[1].Title)
	assert.Equal(t, "Planning", groups[2].Title)
}

func TestSummarize_RoundsOnceAtTheEnd(t *testing.T) {
	start := testutil.Date(2025, time.June, 1, 9, 0)
	// Three 50-minute meetings: 2.5h exactly when summed raw, but
	// 0.8*3 = 2.4 if each event were rounded first.
	events := []domain.Event{
		testutil.Event("Design", start, 50*time.Minute),
		testutil.Event("Design", start, 50*time.Minute),
		testutil.Event("Design", start, 50*time.Minute),
	}

	groups := Summarize(events)
	require.Len(t, groups, 1)
	assert.Equal(t, 2.5, groups[0].TotalHours)
}

func TestSummarize_NegativeDurationsSumAsIs(t *testing.T) {
	start := testutil.Date(2025, time.June, 1, 9, 0)
	events := []domain.Event{
		testutil.Event("Oncall", start, time.Hour),
		// Swapped start/end columns in the source.
		testutil.Event("Oncall", start, 0, testutil.WithEnd(start.Add(-30*time.Minute))),
	}

	groups := Summarize(events)
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Occurrences)
	assert.Equal(t, 0.5, groups[0].TotalHours)
}

func TestSummarize_KeepsLastSeenAttendees(t *testing.T) {
	start := testutil.Date(2025, time.June, 1, 9, 0)
	events := []domain.Event{
		testutil.Event("Standup", start, 15*time.Minute, testutil.WithAttendees("Alice")),
		testutil.Event("Standup", start.AddDate(0, 0, 1), 15*time.Minute, testutil.WithAttendees("Alice", "Bob")),
	}

	groups := Summarize(events)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"Alice", "Bob"}, groups[0].Attendees)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}

func TestTotalHours_SumsRoundedGroupHours(t *testing.T) {
	groups := []domain.MeetingGroup{
		{TotalHours: 1.5},
		{TotalHours: 0.3},
		{TotalHours: 2.0},
	}
	assert.InDelta(t, 3.8, TotalHours(groups), 1e-9)
}
