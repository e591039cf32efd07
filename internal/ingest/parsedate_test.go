package ingest

import (
	"testing"
	"time"

	"github.com/alexanderramin/meetcost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"double digit fields", "15/06/2025 9:30:00", time.Date(2025, time.June, 15, 9, 30, 0, 0, time.Local)},
		{"single digit day and month", "1/6/2025 9:00:00", time.Date(2025, time.June, 1, 9, 0, 0, 0, time.Local)},
		{"late evening", "31/12/2024 23:59:59", time.Date(2024, time.December, 31, 23, 59, 59, 0, time.Local)},
		{"midnight", "2/1/2025 0:00:00", time.Date(2025, time.January, 2, 0, 0, 0, 0, time.Local)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDateTime(tc.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}
}

func TestParseDateTime_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no slashes", "2025-06-01 09:00:00"},
		{"too few slash parts", "1/2025 9:00:00"},
		{"too many slash parts", "1/6/2025/1 9:00:00"},
		{"missing time", "1/6/2025"},
		{"time without seconds", "1/6/2025 9:00"},
		{"non-numeric day", "x/6/2025 9:00:00"},
		{"non-numeric minute", "1/6/2025 9:xx:00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDateTime(tc.input)
			assert.ErrorIs(t, err, domain.ErrMalformedDate)
		})
	}
}
